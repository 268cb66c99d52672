package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiset_Equality(t *testing.T) {
	a := assert.New(t)
	a.Equal(NewMultiset(Five, Six, Five), NewMultiset(Six, Five, Five))
	a.NotEqual(NewMultiset(Five, Six), NewMultiset(Five, Six, Five))
	a.True(NewMultiset(Five, Six, Five) == MultisetOf(CardsFromString("6c,5d,5h")))

	set := NewComboSet(NewMultiset(Nine, Nine))
	a.True(set.Contains(Repeat(Nine, 2)))
	a.False(set.Contains(Repeat(Nine, 1)))
}

func TestMultiset_Counts(t *testing.T) {
	a := assert.New(t)
	m := NewMultiset(Jack, Six, Jack, Six, Jack)
	a.Equal(5, m.Len())
	a.Equal(3, m.Count(Jack))
	a.Equal([]Rank{Six, Jack}, m.Distinct())
	a.Equal([]Rank{Six, Six, Jack, Jack, Jack}, m.Ranks())
	a.Equal("{6,6,J,J,J}", m.String())

	a.Equal(NewMultiset(Jack, Jack, Jack, Six), Repeat(Jack, 3).Union(Repeat(Six, 1)))
}

func TestMultiset_IsValidCombo(t *testing.T) {
	tests := []struct {
		name  string
		combo Multiset
		valid bool
		major Rank
	}{
		{"empty", NewMultiset(), false, 0},
		{"single", NewMultiset(Queen), true, Queen},
		{"run", NewMultiset(Two, Two, Two), true, Two},
		{"padded run", NewMultiset(Two, Two, Two, Six), true, Two},
		{"only fillers", NewMultiset(Six, Six), true, Six},
		{"two ranks without filler", NewMultiset(Two, Three), false, 0},
		{"three ranks", NewMultiset(Two, Three, Six), false, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, test.combo.IsValidCombo())

			major, ok := test.combo.MajorRank()
			assert.Equal(t, test.valid, ok)
			assert.Equal(t, test.major, major)
		})
	}
}

func TestComboSet_Sorted(t *testing.T) {
	set := NewComboSet(
		NewMultiset(Nine),
		NewMultiset(Five, Five, Five, Six),
		NewMultiset(Five),
		NewMultiset(Five, Five, Five),
	)

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []Multiset{
		NewMultiset(Five),
		NewMultiset(Five, Five, Five),
		NewMultiset(Five, Five, Five, Six),
		NewMultiset(Nine),
	}, set.Sorted())
}
