package lesson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/effective-patterns/internal/notes"
)

func TestCatalogOrder(t *testing.T) {
	assert.Equal(t, []string{"hierarchy", "defaults", "skeletal", "generics", "variance"}, Names())
}

func TestCatalogIsACopy(t *testing.T) {
	lessons := Catalog()
	lessons[0].Name = "changed"
	assert.Equal(t, "hierarchy", Catalog()[0].Name)
}

func TestCatalogMatchesNotes(t *testing.T) {
	noteNames, err := notes.Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, Names(), noteNames)

	for _, l := range Catalog() {
		note, err := notes.Load(l.Name)
		require.NoError(t, err)
		assert.Equal(t, l.Title, note.Title, "title of %s", l.Name)
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("skeletal")
	require.True(t, ok)
	assert.Equal(t, "skeletal", l.Name)
	assert.NotNil(t, l.Run)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Names()))

	some, err := Select([]string{"variance", "hierarchy"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "variance", some[0].Name)
	assert.Equal(t, "hierarchy", some[1].Name)
}

func TestSelectUnknown(t *testing.T) {
	_, err := Select([]string{"skeletal", "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLesson))
	assert.Contains(t, err.Error(), `unknown lesson "nope"`)
}
