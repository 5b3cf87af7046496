package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleEdges(t *testing.T) {
	r := Rectangle{X: 2, Y: 3, W: 4, L: 5, Idx: 1}
	assert.Equal(t, 6.0, r.Right())
	assert.Equal(t, 8.0, r.Top())
	assert.Equal(t, 20.0, r.Area())
}

func TestGroupPriorities_Ascending(t *testing.T) {
	g := Group{4: {}, 1: {}, 3: {}}
	assert.Equal(t, []int{1, 3, 4}, g.Priorities())
}

func TestSetThicknesses_Descending(t *testing.T) {
	s := Set{1.0: {}, 3.0: {}, 2.0: {}}
	assert.Equal(t, []float64{3.0, 2.0, 1.0}, s.Thicknesses())
}

func TestSetClone_Independent(t *testing.T) {
	s := Set{2.0: {1: {{W: 5, L: 3}}}}
	c := s.Clone()

	require.Equal(t, s, c)
	c[2.0][1][0] = Size{W: 9, L: 9}
	assert.Equal(t, Size{W: 5, L: 3}, s[2.0][1][0])
}

func TestSetAreas(t *testing.T) {
	s := Set{
		3.0: {1: {{W: 2, L: 3}, {W: 5, L: 5}}},
		1.0: {2: {{W: 7, L: 9}}, 3: {}},
	}
	areas := s.Areas()
	assert.Equal(t, 31.0, areas[3.0])
	assert.Equal(t, 63.0, areas[1.0])
}

func TestPlacementSetAreasAndCount(t *testing.T) {
	ps := PlacementSet{
		3.0: {1: {{X: 0, Y: 0, W: 2, L: 3, Idx: 0}, {X: 2, Y: 0, W: 4, L: 4, Idx: 1}}},
		1.0: {2: {{X: 0, Y: 0, W: 5, L: 5, Idx: 0}}},
	}
	areas := ps.Areas()
	assert.Equal(t, 22.0, areas[3.0])
	assert.Equal(t, 25.0, areas[1.0])
	assert.Equal(t, 3, ps.Count())
}

func TestSetWithAllowance(t *testing.T) {
	s := Set{2.0: {1: {{W: 5, L: 3}}}}

	got := s.WithAllowance(0.5)

	assert.Equal(t, Size{W: 5.5, L: 3.5}, got[2.0][1][0])
	assert.Equal(t, Size{W: 5, L: 3}, s[2.0][1][0])
}

func TestItemsByIndex(t *testing.T) {
	s := Set{
		3.0: {2: {{W: 7, L: 9}, {W: 4, L: 3}, {W: 5, L: 5}}},
		2.0: {1: {{W: 2, L: 4}}, 3: {{W: 5, L: 3}, {W: 4, L: 6}, {W: 1, L: 2}}},
	}
	indices := IndexSet{
		3.0: {2: {1}},
		2.0: {3: {0, 2}},
	}

	got := ItemsByIndex(s, indices)

	assert.Equal(t, Set{
		3.0: {2: {{W: 4, L: 3}}},
		2.0: {3: {{W: 5, L: 3}, {W: 1, L: 2}}},
	}, got)
}

func TestItemsByIndex_PreservesBucketOrder(t *testing.T) {
	s := Set{1.0: {1: {{W: 1, L: 1}, {W: 2, L: 2}, {W: 3, L: 3}}}}
	// Index order in the worklist does not matter; the original bucket order
	// does.
	indices := IndexSet{1.0: {1: {2, 0}}}

	got := ItemsByIndex(s, indices)
	assert.Equal(t, []Size{{W: 1, L: 1}, {W: 3, L: 3}}, got[1.0][1])
}
