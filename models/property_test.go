package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_SetUpdatesExistingByName(t *testing.T) {
	var p Properties

	p.Set("title", "first")
	p.Set("artist", "someone")
	p.Set("title", "second")

	assert.Equal(t, 2, p.Len(), "setting an existing name must not add an entry")

	v, ok := p.Get("title")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestProperties_InsertionOrderPreserved(t *testing.T) {
	var p Properties

	p.Set("c", "3")
	p.Set("a", "1")
	p.Set("b", "2")
	p.Set("a", "updated") // update must not move "a" to the back

	list := p.List()
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "a", list[1].Name)
	assert.Equal(t, "b", list[2].Name)
	assert.Equal(t, "updated", list[1].Value)
}

func TestProperties_SetPropertyKeepsStoredIDs(t *testing.T) {
	p := NewProperties(Property{ID: 10, TableObjectID: 5, Name: "ext", Value: "mp3"})

	p.Set("ext", "ogg")

	list := p.List()
	require.Len(t, list, 1)
	assert.Equal(t, int64(10), list[0].ID)
	assert.Equal(t, int64(5), list[0].TableObjectID)
	assert.Equal(t, "ogg", list[0].Value)
}

func TestProperties_Remove(t *testing.T) {
	p := NewProperties(
		Property{Name: "a", Value: "1"},
		Property{Name: "b", Value: "2"},
	)

	p.Remove("a")
	p.Remove("missing") // no-op

	assert.Equal(t, 1, p.Len())
	_, ok := p.Get("a")
	assert.False(t, ok)
}

func TestProperties_Keep(t *testing.T) {
	p := NewProperties(
		Property{Name: "ext", Value: "mp3"},
		Property{Name: "title", Value: "song"},
		Property{Name: "artist", Value: "someone"},
	)

	p.Keep(PropertyNameExtension)

	assert.Equal(t, 1, p.Len())
	v, ok := p.Get("ext")
	require.True(t, ok)
	assert.Equal(t, "mp3", v)
}

func TestProperties_Map(t *testing.T) {
	p := NewProperties(
		Property{Name: "a", Value: "1"},
		Property{Name: "b", Value: "2"},
	)

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, p.Map())
}

func TestPropertiesFromMap(t *testing.T) {
	p := PropertiesFromMap(map[string]string{"x": "1", "y": "2"})

	assert.Equal(t, 2, p.Len())
	v, ok := p.Get("y")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}
