package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertTestNotes(n *Notes) []string {
	ids := make([]string, 0, 3)
	ids = append(ids, n.InsertNote("fsmith", []byte("This was updated"), ""))
	ids = append(ids, n.InsertNote("fsmith", []byte("Something to find here"), ""))
	ids = append(ids, n.InsertNote("fsmith", []byte("Nonething to find here"), "private"))
	return ids
}

func TestNotesInsert(t *testing.T) {
	var notes Notes
	ids := insertTestNotes(&notes)

	assert.Len(t, notes, 3)

	first := notes.GetNote(ids[0])
	require.NotNil(t, first)
	assert.Equal(t, "fsmith", first.Author)
	assert.Equal(t, DefaultNoteAccess, first.Access)

	private := notes.GetNote(ids[2])
	require.NotNil(t, private)
	assert.Equal(t, "private", private.Access)
}

func TestNotesGetAbsent(t *testing.T) {
	var notes Notes
	assert.Nil(t, notes.GetNote("1234"))
}

func TestNotesModify(t *testing.T) {
	var notes Notes
	ids := insertTestNotes(&notes)

	t.Run("empty access preserves prior value", func(t *testing.T) {
		notes.ModifyNote(ids[2], "fsmith", []byte("still private"), "")
		note := notes.GetNote(ids[2])
		assert.Equal(t, "private", note.Access)
		assert.Equal(t, ByteContent("still private"), note.Content)
		assert.GreaterOrEqual(t, note.ModifiedDTM, note.CreatedDTM)
	})

	t.Run("explicit access replaces prior value", func(t *testing.T) {
		notes.ModifyNote(ids[0], "jdoe", []byte("new content"), "restricted")
		note := notes.GetNote(ids[0])
		assert.Equal(t, "jdoe", note.Author)
		assert.Equal(t, "restricted", note.Access)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		notes.ModifyNote("1234", "nobody", []byte("nothing"), "")
		assert.Len(t, notes, 3)
	})
}

func TestNotesSearch(t *testing.T) {
	var notes Notes
	insertTestNotes(&notes)

	// Substring matching, not whole-word: "thing" hits "Something" and
	// "Nonething".
	found := notes.SearchNotes("thing")
	require.Len(t, found, 2)
	for _, note := range found {
		text, err := note.ContentAsString()
		require.NoError(t, err)
		assert.Contains(t, text, "thing")
	}

	assert.Empty(t, notes.SearchNotes("absent"))
}

func TestNotesSearchInvalidUTF8(t *testing.T) {
	var notes Notes
	notes.InsertNote("fsmith", []byte{0xff, 0xfe, 'f', 'i', 'n', 'd', 'm', 'e'}, "")

	// Invalid bytes are matched against their lossy decoding.
	assert.Len(t, notes.SearchNotes("findme"), 1)
	assert.Len(t, notes.SearchNotes("�"), 1)
}

func TestNotesRemove(t *testing.T) {
	var notes Notes
	ids := insertTestNotes(&notes)

	notes.RemoveNote(ids[1])
	assert.Len(t, notes, 2)

	// Unknown id is a silent no-op.
	notes.RemoveNote("1234")
	assert.Len(t, notes, 2)
}

func TestNoteContentAsString(t *testing.T) {
	t.Run("valid UTF-8", func(t *testing.T) {
		note := NewNote("fsmith", []byte("This was updated"), "")
		text, err := note.ContentAsString()
		require.NoError(t, err)
		assert.Equal(t, "This was updated", text)
	})

	t.Run("invalid UTF-8 reports failure with lossy text", func(t *testing.T) {
		note := NewNote("fsmith", []byte{'o', 'k', 0xff}, "")
		text, err := note.ContentAsString()
		assert.ErrorIs(t, err, ErrInvalidContent)
		assert.Equal(t, "ok�", text)
	})
}

func TestNotesInsertCopiesContent(t *testing.T) {
	var notes Notes
	content := []byte("original")
	id := notes.InsertNote("fsmith", content, "")

	content[0] = 'X'
	text, err := notes.GetNote(id).ContentAsString()
	require.NoError(t, err)
	assert.Equal(t, "original", text)
}
