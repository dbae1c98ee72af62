package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scaffold/pkg/types"
)

// lifecycleNames are the catalog fields present on every entity.
var lifecycleNames = []string{"id", "created_dtm", "modified_dtm", "inactive_dtm", "expired_dtm", "activity"}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func TestAugmentLifecycleOnly(t *testing.T) {
	base := []Field{{Name: "name", Type: "string"}, {Name: "active", Type: "bool"}}

	fields, err := Augment(base)
	require.NoError(t, err)

	want := append(append([]string{}, lifecycleNames...), "name", "active")
	assert.Equal(t, want, fieldNames(fields))
}

func TestAugmentWithCapabilities(t *testing.T) {
	fields, err := Augment(nil, CapabilityTags, CapabilityNotes)
	require.NoError(t, err)

	// Capability fields follow the lifecycle fields in canonical order,
	// regardless of request order.
	want := append(append([]string{}, lifecycleNames...), "notes", "tags")
	assert.Equal(t, want, fieldNames(fields))
}

func TestAugmentUnknownCapability(t *testing.T) {
	_, err := Augment(nil, "attachments")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestAugmentDuplicateBaseField(t *testing.T) {
	base := []Field{{Name: "name", Type: "string"}, {Name: "name", Type: "string"}}
	_, err := Augment(base)
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestAugmentIdempotent(t *testing.T) {
	base := []Field{{Name: "name", Type: "string"}}

	first, err := Augment(base, CapabilityTags)
	require.NoError(t, err)

	// Re-augmenting an already-augmented list adds nothing: every catalog
	// name is already present and is left as authored.
	second, err := Augment(first, CapabilityTags)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAugmentPreservesAuthoredField(t *testing.T) {
	// A caller-declared id keeps its authored type and position.
	base := []Field{{Name: "id", Type: "CustomID"}, {Name: "name", Type: "string"}}

	fields, err := Augment(base)
	require.NoError(t, err)

	names := fieldNames(fields)
	assert.Equal(t, 1, countOf(names, "id"))
	for _, f := range fields {
		if f.Name == "id" {
			assert.Equal(t, "CustomID", f.Type)
		}
	}
}

func countOf(names []string, name string) int {
	count := 0
	for _, n := range names {
		if n == name {
			count++
		}
	}
	return count
}

func TestDefineCapabilities(t *testing.T) {
	def, err := Define(nil, CapabilityTags, CapabilityMetadata)
	require.NoError(t, err)
	assert.Equal(t, []string{CapabilityTags, CapabilityMetadata}, def.Capabilities())
}

func TestInitializerDefaults(t *testing.T) {
	def, err := Define(nil, CapabilityNotes, CapabilityTags)
	require.NoError(t, err)

	init := def.Initializer(nil)

	assert.Len(t, init, 8)
	assert.Len(t, init["id"].(string), 36)
	created := init["created_dtm"].(int64)
	assert.Equal(t, created, init["modified_dtm"].(int64))
	assert.Equal(t, int64(90), (init["inactive_dtm"].(int64)-created)/86400)
	assert.Greater(t, init["expired_dtm"].(int64), init["inactive_dtm"].(int64))
	assert.Equal(t, []types.ActivityItem{}, init["activity"])
	assert.Equal(t, types.Notes{}, init["notes"])
	assert.Equal(t, types.Tags{}, init["tags"])
}

func TestInitializerExplicitWins(t *testing.T) {
	def, err := Define(nil, CapabilityTags)
	require.NoError(t, err)

	explicit := map[string]any{
		"id":          "my-own-id",
		"created_dtm": int64(0),
		"tags":        types.Tags{"seeded"},
	}
	init := def.Initializer(explicit)

	// Explicitly-set fields are preserved verbatim, even zero values.
	assert.Equal(t, "my-own-id", init["id"])
	assert.Equal(t, int64(0), init["created_dtm"])
	assert.Equal(t, types.Tags{"seeded"}, init["tags"])

	// Unset catalog fields still get defaults.
	assert.NotZero(t, init["modified_dtm"])
	assert.NotZero(t, init["expired_dtm"])
}

func TestInitializerKeepsBaseFields(t *testing.T) {
	def, err := Define([]Field{{Name: "name", Type: "string"}})
	require.NoError(t, err)

	init := def.Initializer(map[string]any{"name": "Peter Petty"})
	assert.Equal(t, "Peter Petty", init["name"])
	assert.Len(t, init, 7)
}

// TestInitializerAllSubsets exercises every subset of the six
// capabilities: the initializer must produce exactly the lifecycle
// fields plus one field per requested capability, each appearing once.
func TestInitializerAllSubsets(t *testing.T) {
	for mask := 0; mask < 1<<len(Capabilities); mask++ {
		var caps []string
		for i, name := range Capabilities {
			if mask&(1<<i) != 0 {
				caps = append(caps, name)
			}
		}

		def, err := Define(nil, caps...)
		require.NoError(t, err)

		init := def.Initializer(nil)
		assert.Len(t, init, len(lifecycleNames)+len(caps))
		for _, name := range lifecycleNames {
			assert.Contains(t, init, name)
		}
		for _, name := range caps {
			assert.Contains(t, init, name)
		}

		fields := def.Fields()
		assert.Len(t, fields, len(lifecycleNames)+len(caps))
	}
}
