package deck

import (
	"sort"
	"strings"
)

// Filler is the wild rank that may pad a same-rank run without changing its effect
const Filler = Six

// Multiset is an unordered bag of ranks.
// It is a fixed size array, so two multisets with the same counts are == and can be used as map keys
type Multiset [MaxRank + 1]int

// NewMultiset returns a multiset containing the ranks
func NewMultiset(ranks ...Rank) Multiset {
	var m Multiset
	for _, rank := range ranks {
		m.Add(rank, 1)
	}

	return m
}

// MultisetOf returns the multiset of the card ranks
func MultisetOf(cards Cards) Multiset {
	return NewMultiset(cards.Ranks()...)
}

// Repeat returns a multiset containing count copies of rank
func Repeat(rank Rank, count int) Multiset {
	var m Multiset
	m.Add(rank, count)
	return m
}

// Add adds count copies of the rank
func (m *Multiset) Add(rank Rank, count int) {
	if !rank.IsValid() {
		panic("invalid rank")
	}

	m[rank] += count
}

func (m *Multiset) remove(rank Rank) {
	m[rank]--
}

// Union returns a new multiset with the counts of both
func (m Multiset) Union(o Multiset) Multiset {
	for rank := MinRank; rank <= MaxRank; rank++ {
		m[rank] += o[rank]
	}

	return m
}

// Count returns how many times the rank appears
func (m Multiset) Count(rank Rank) int {
	return m[rank]
}

// Len returns the total number of ranks
func (m Multiset) Len() int {
	total := 0
	for _, count := range m {
		total += count
	}

	return total
}

// Distinct returns the distinct ranks in ascending order
func (m Multiset) Distinct() []Rank {
	ranks := make([]Rank, 0)
	for rank := MinRank; rank <= MaxRank; rank++ {
		if m[rank] > 0 {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

// Ranks returns every rank in ascending order (the canonical form)
func (m Multiset) Ranks() []Rank {
	ranks := make([]Rank, 0, m.Len())
	for rank := MinRank; rank <= MaxRank; rank++ {
		for i := 0; i < m[rank]; i++ {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

// IsValidCombo returns true if there are at most two distinct ranks, and if two, one of them is the filler
func (m Multiset) IsValidCombo() bool {
	distinct := m.Distinct()
	switch len(distinct) {
	case 0:
		return false
	case 1:
		return true
	case 2:
		return m[Filler] > 0
	default:
		return false
	}
}

// MajorRank returns the rank that decides the effect of a valid combo.
// Fillers only decide the effect when the combo is nothing but fillers
func (m Multiset) MajorRank() (Rank, bool) {
	if !m.IsValidCombo() {
		return 0, false
	}

	for _, rank := range m.Distinct() {
		if rank != Filler {
			return rank, true
		}
	}

	return Filler, true
}

func (m Multiset) String() string {
	ranks := m.Ranks()
	s := make([]string, len(ranks))
	for i, rank := range ranks {
		s[i] = rank.String()
	}

	return "{" + strings.Join(s, ",") + "}"
}

// ComboSet is a set of multisets
type ComboSet map[Multiset]struct{}

// NewComboSet returns a set containing the multisets
func NewComboSet(multisets ...Multiset) ComboSet {
	s := make(ComboSet, len(multisets))
	for _, m := range multisets {
		s.Add(m)
	}

	return s
}

// Add adds the multiset to the set
func (s ComboSet) Add(m Multiset) {
	s[m] = struct{}{}
}

// Contains returns true if the multiset is in the set
func (s ComboSet) Contains(m Multiset) bool {
	_, ok := s[m]
	return ok
}

// Len returns the size of the set
func (s ComboSet) Len() int {
	return len(s)
}

// Sorted returns the multisets ordered lexicographically by their canonical ranks
func (s ComboSet) Sorted() []Multiset {
	combos := make([]Multiset, 0, len(s))
	for m := range s {
		combos = append(combos, m)
	}

	sort.Slice(combos, func(i, j int) bool {
		a, b := combos[i].Ranks(), combos[j].Ranks()
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})

	return combos
}
