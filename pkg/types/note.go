package types

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
)

// DefaultNoteAccess is the access level applied when InsertNote is called
// with an empty access value.
const DefaultNoteAccess = "public"

// Note is a free-form note attached to an entity. Content is raw bytes
// and is not assumed to be valid text.
type Note struct {
	ID          string `json:"id"`
	CreatedDTM  int64  `json:"created_dtm"`
	ModifiedDTM int64  `json:"modified_dtm"`

	// Author identifies who wrote the note.
	Author string `json:"author"`

	// Access is the note's access level, e.g. "public", "private".
	Access string `json:"access"`

	// Content is the note body as raw bytes.
	Content ByteContent `json:"content"`
}

// NewNote returns a Note with a fresh id and creation timestamps. An
// empty access falls back to DefaultNoteAccess. The content slice is
// copied.
func NewNote(author string, content []byte, access string) *Note {
	if access == "" {
		access = DefaultNoteAccess
	}
	now := defaults.Now()
	return &Note{
		ID:          defaults.NewID(),
		CreatedDTM:  now,
		ModifiedDTM: now,
		Author:      author,
		Access:      access,
		Content:     ByteContent(slices.Clone(content)),
	}
}

// ContentAsString converts the stored bytes to text. When the bytes are
// not valid UTF-8 it returns the lossy decoding, with invalid sequences
// replaced by the unicode replacement character, together with
// ErrInvalidContent.
func (n *Note) ContentAsString() (string, error) {
	if utf8.Valid(n.Content) {
		return string(n.Content), nil
	}
	return strings.ToValidUTF8(string(n.Content), "�"), ErrInvalidContent
}

// Notes is the id-keyed note collection contributed by the "notes"
// capability.
type Notes map[string]*Note

// InsertNote constructs a Note with a fresh id, inserts it, and returns
// the id. An empty access applies DefaultNoteAccess.
func (n *Notes) InsertNote(author string, content []byte, access string) string {
	if *n == nil {
		*n = make(Notes)
	}
	note := NewNote(author, content, access)
	(*n)[note.ID] = note
	return note.ID
}

// GetNote returns the note with the given id, or nil when absent.
func (n Notes) GetNote(id string) *Note {
	return n[id]
}

// ModifyNote updates the note with the given id in place and bumps its
// ModifiedDTM. An empty access preserves the prior access level. A no-op
// when the id is absent.
func (n Notes) ModifyNote(id, author string, content []byte, access string) {
	note, ok := n[id]
	if !ok {
		return
	}
	note.Author = author
	note.Content = ByteContent(slices.Clone(content))
	if access != "" {
		note.Access = access
	}
	note.ModifiedDTM = defaults.Now()
}

// SearchNotes returns clones of the notes whose content contains the
// given substring, ordered by id. Content is matched as UTF-8 text;
// invalid sequences are matched against their lossy decoding.
func (n Notes) SearchNotes(substring string) []*Note {
	results := make([]*Note, 0)
	ids := make([]string, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		note := n[id]
		text := strings.ToValidUTF8(string(note.Content), "�")
		if strings.Contains(text, substring) {
			clone := *note
			clone.Content = ByteContent(slices.Clone(note.Content))
			results = append(results, &clone)
		}
	}
	return results
}

// RemoveNote deletes the note with the given id. A no-op when the id is
// absent.
func (n Notes) RemoveNote(id string) {
	delete(n, id)
}
