package scaffold

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// Field is one name and type pair in an entity's field list.
type Field struct {
	Name string
	Type string
}

// Definition-time configuration errors.
var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrDuplicateField    = errors.New("duplicate field name")
)

// catalogFields returns the ordered catalog entries for the given
// capability set: lifecycle fields first, then one field per requested
// capability in canonical order. Requesting the same capability twice is
// harmless.
func catalogFields(capabilities []string) ([]fieldSpec, error) {
	requested := make(map[string]bool, len(capabilities))
	for _, name := range capabilities {
		if !IsValidCapability(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
		}
		requested[name] = true
	}

	specs := make([]fieldSpec, 0, len(lifecycleFields)+len(requested))
	specs = append(specs, lifecycleFields...)
	for _, name := range Capabilities {
		if requested[name] {
			specs = append(specs, capabilityFields[name])
		}
	}
	return specs, nil
}

// Definition is a validated entity definition: the caller's base fields
// plus a capability set, compiled against the catalog. It drives both
// field augmentation and constructor injection.
type Definition struct {
	base         []Field
	capabilities []string
	specs        []fieldSpec
	baseNames    map[string]bool
}

// Define validates the base field list and capability set and compiles
// them into a Definition. An unknown capability name or a duplicate base
// field name is a configuration error reported here, at definition time,
// never at call time.
func Define(base []Field, capabilities ...string) (*Definition, error) {
	specs, err := catalogFields(capabilities)
	if err != nil {
		return nil, err
	}

	baseNames := make(map[string]bool, len(base))
	for _, f := range base {
		if baseNames[f.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		baseNames[f.Name] = true
	}

	return &Definition{
		base:         append([]Field(nil), base...),
		capabilities: append([]string(nil), capabilities...),
		specs:        specs,
		baseNames:    baseNames,
	}, nil
}

// Fields returns the full augmented field list: lifecycle fields first,
// capability fields next, base fields last. A catalog field whose name the
// caller already declared in the base list is left as authored and not
// added again, so augmenting an already-augmented list changes nothing.
func (d *Definition) Fields() []Field {
	fields := make([]Field, 0, len(d.specs)+len(d.base))
	for _, s := range d.specs {
		if d.baseNames[s.Name] {
			continue
		}
		fields = append(fields, Field{Name: s.Name, Type: s.Type})
	}
	return append(fields, d.base...)
}

// Capabilities returns the capability set of the definition.
func (d *Definition) Capabilities() []string {
	return append([]string(nil), d.capabilities...)
}

// Initializer completes a constructor body. The result holds every
// explicit initializer verbatim, plus a synthesized default for each
// catalog field the caller did not set. An explicitly-set field is never
// overwritten, even when its value is a zero value.
func (d *Definition) Initializer(explicit map[string]any) map[string]any {
	init := make(map[string]any, len(d.specs)+len(explicit))
	for name, value := range explicit {
		init[name] = value
	}

	now := defaults.Now()
	for _, s := range d.specs {
		if _, ok := init[s.Name]; ok {
			continue
		}
		init[s.Name] = s.Default(now)
	}
	return init
}

// Augment computes the full field list for an entity declared with the
// given base fields and capability set. It is shorthand for
// Define(base, capabilities...).Fields().
func Augment(base []Field, capabilities ...string) ([]Field, error) {
	d, err := Define(base, capabilities...)
	if err != nil {
		return nil, err
	}
	return d.Fields(), nil
}
