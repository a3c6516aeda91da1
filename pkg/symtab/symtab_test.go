package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("MAIN", 0, CodeLabel))

	sym, ok := st.Lookup("MAIN")
	require.True(t, ok)
	assert.Equal(t, 0, sym.Value)
	assert.Equal(t, CodeLabel, sym.Kind)

	_, ok = st.Lookup("GHOST")
	assert.False(t, ok)
}

func TestInsertDuplicate(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("MAIN", 0, CodeLabel))
	err := st.Insert("MAIN", 1, DataLabel)
	var dup ErrDuplicate
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "MAIN", dup.Name)
}

func TestRebaseData(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("START", 0, CodeLabel))
	require.NoError(t, st.Insert("LEN", 3, DataLabel))
	require.NoError(t, st.Insert("XPTR", 0, External))

	st.RebaseData(5, 100)

	start, _ := st.Lookup("START")
	assert.Equal(t, 100, start.Value)

	length, _ := st.Lookup("LEN")
	assert.Equal(t, 3+5+100, length.Value)

	ext, _ := st.Lookup("XPTR")
	assert.Equal(t, 0, ext.Value, "external symbols are never rebased")
}

func TestPromoteToEntry(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("MAIN", 100, CodeLabel))

	require.NoError(t, st.PromoteToEntry("MAIN"))
	sym, _ := st.Lookup("MAIN")
	assert.Equal(t, Entry, sym.Kind)

	entries := st.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "MAIN", entries[0].Name)
}

func TestPromoteToEntryUnknown(t *testing.T) {
	st := New()
	err := st.PromoteToEntry("GHOST")
	var unk ErrUnknownEntry
	require.ErrorAs(t, err, &unk)
}

func TestPromoteToEntryOnExternal(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("XPTR", 0, External))
	err := st.PromoteToEntry("XPTR")
	var onExt ErrEntryOnExternal
	require.ErrorAs(t, err, &onExt)
}

func TestEntriesDeclarationOrder(t *testing.T) {
	st := New()
	require.NoError(t, st.Insert("B", 1, CodeLabel))
	require.NoError(t, st.Insert("A", 2, CodeLabel))
	require.NoError(t, st.PromoteToEntry("B"))
	require.NoError(t, st.PromoteToEntry("A"))

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Name)
	assert.Equal(t, "A", entries[1].Name)
}
