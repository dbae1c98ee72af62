package types

import (
	"slices"

	"github.com/rs/zerolog/log"
)

// Tags is the ordered tag collection contributed by the "tags"
// capability. It has set semantics: insertion order, no duplicates.
type Tags []string

// AddTag appends the tag. Adding a tag that is already present is a
// no-op; the duplicate is reported at debug level.
func (t *Tags) AddTag(tag string) {
	if t.HasTag(tag) {
		log.Debug().Str("tag", tag).Msg("tag already present")
		return
	}
	*t = append(*t, tag)
}

// HasTag reports whether the tag is present.
func (t Tags) HasTag(tag string) bool {
	return slices.Contains(t, tag)
}

// RemoveTag removes the tag. Unlike the id-keyed collections, removing a
// tag that is not present is an error, not a silent no-op: it returns
// ErrTagNotFound.
func (t *Tags) RemoveTag(tag string) error {
	i := slices.Index(*t, tag)
	if i < 0 {
		return ErrTagNotFound
	}
	*t = slices.Delete(*t, i, i+1)
	return nil
}
