package scaffold

import (
	"github.com/mesh-intelligence/scaffold/pkg/defaults"
	"github.com/mesh-intelligence/scaffold/pkg/types"
)

// Capability names. An entity type opts into any subset of these; the
// lifecycle fields and the activity log are always present.
const (
	CapabilityAddresses      = "addresses"
	CapabilityEmailAddresses = "email_addresses"
	CapabilityMetadata       = "metadata"
	CapabilityNotes          = "notes"
	CapabilityPhoneNumbers   = "phone_numbers"
	CapabilityTags           = "tags"
)

// Capabilities lists every capability name in canonical order.
var Capabilities = []string{
	CapabilityAddresses,
	CapabilityEmailAddresses,
	CapabilityMetadata,
	CapabilityNotes,
	CapabilityPhoneNumbers,
	CapabilityTags,
}

// fieldSpec is one catalog entry: the field the augmenter adds and the
// default initializer the injector synthesizes for it. Default receives
// the constructor's clock snapshot so the time-derived defaults of a
// single construction agree with each other.
type fieldSpec struct {
	Name    string
	Type    string
	Default func(now int64) any
}

// lifecycleFields are added to every entity unconditionally, in this
// order. The catalog is the single source of truth for both the type
// augmenter and the constructor injector.
var lifecycleFields = []fieldSpec{
	{Name: "id", Type: "string", Default: func(int64) any { return defaults.NewID() }},
	{Name: "created_dtm", Type: "int64", Default: func(now int64) any { return now }},
	{Name: "modified_dtm", Type: "int64", Default: func(now int64) any { return now }},
	{Name: "inactive_dtm", Type: "int64", Default: func(now int64) any { return defaults.AddDays(now, 90) }},
	{Name: "expired_dtm", Type: "int64", Default: func(now int64) any { return defaults.AddYears(now, 3) }},
	{Name: "activity", Type: "[]types.ActivityItem", Default: func(int64) any { return []types.ActivityItem{} }},
}

// capabilityFields maps each capability name to the field it contributes.
var capabilityFields = map[string]fieldSpec{
	CapabilityAddresses: {
		Name: "addresses", Type: "types.Addresses",
		Default: func(int64) any { return types.Addresses{} },
	},
	CapabilityEmailAddresses: {
		Name: "email_addresses", Type: "types.EmailAddresses",
		Default: func(int64) any { return types.EmailAddresses{} },
	},
	CapabilityMetadata: {
		Name: "metadata", Type: "types.Metadata",
		Default: func(int64) any { return types.Metadata{} },
	},
	CapabilityNotes: {
		Name: "notes", Type: "types.Notes",
		Default: func(int64) any { return types.Notes{} },
	},
	CapabilityPhoneNumbers: {
		Name: "phone_numbers", Type: "types.PhoneNumbers",
		Default: func(int64) any { return types.PhoneNumbers{} },
	},
	CapabilityTags: {
		Name: "tags", Type: "types.Tags",
		Default: func(int64) any { return types.Tags{} },
	},
}

// IsValidCapability reports whether name is a recognized capability.
func IsValidCapability(name string) bool {
	_, ok := capabilityFields[name]
	return ok
}
