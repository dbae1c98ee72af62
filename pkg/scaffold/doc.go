// Package scaffold is the capability-driven type augmentation and
// constructor injection engine. A caller declares an entity's base fields
// and a capability set; the engine computes the full augmented field list
// (lifecycle fields always, capability fields on request) and completes
// the caller's constructor by synthesizing defaults for every scaffolded
// field the caller did not set explicitly. Explicitly-set fields are
// never overwritten.
//
// Both the augmenter and the injector consult the same field catalog, so
// they cannot diverge. Configuration errors (an unknown capability name,
// a duplicate field) are reported at definition time by Define, not at
// call time.
//
// Init applies the same injection rule to a concrete struct composed of
// the embedded types.Entity base and capability containers.
package scaffold
