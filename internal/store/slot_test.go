package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID    string
	Notes []string
}

func TestSlot_EmptyByDefault(t *testing.T) {
	var s Slot[*record]

	got, ok := s.Get()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, s.Has())
}

func TestSlot_SetReplacesWholeRecord(t *testing.T) {
	var s Slot[record]

	s.Set(record{ID: "A", Notes: []string{"first"}})
	s.Set(record{ID: "B"})

	got, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "B", got.ID)
	assert.Nil(t, got.Notes, "no fields may carry over from the previous record")
}

func TestSlot_Clear(t *testing.T) {
	var s Slot[record]
	s.Set(record{ID: "A"})

	s.Clear()

	got, ok := s.Get()
	assert.False(t, ok)
	assert.Equal(t, record{}, got)

	// clearing twice is harmless
	s.Clear()
	assert.False(t, s.Has())
}
