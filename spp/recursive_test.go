package spp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redb0/sbppprg/model"
)

func TestBestCandidate_FitCases(t *testing.T) {
	tests := []struct {
		name    string
		w, l    float64
		part    model.Size
		fit     int
		rotated bool
	}{
		{"exact", 10, 10, model.Size{W: 10, L: 10}, fitExact, false},
		{"exact rotated", 10, 4, model.Size{W: 4, L: 10}, fitExact, true},
		{"width exact", 10, 10, model.Size{W: 10, L: 6}, fitWidth, false},
		{"length exact", 8, 10, model.Size{W: 4, L: 10}, fitLength, false},
		{"smaller", 10, 10, model.Size{W: 4, L: 6}, fitSmaller, false},
		{"too big", 10, 10, model.Size{W: 12, L: 14}, fitNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bestCandidate(tt.w, tt.l, []int{0}, []model.Size{tt.part})
			assert.Equal(t, tt.fit, c.fit)
			if tt.fit < fitNone {
				assert.Equal(t, tt.rotated, c.rotated)
				assert.Equal(t, 0, c.idx)
			}
		})
	}
}

func TestBestCandidate_PrefersLowerCase(t *testing.T) {
	// Worklist order: a smaller-fit part first, then a width-exact one. The
	// lower case number wins even though it comes later.
	parts := []model.Size{{W: 4, L: 6}, {W: 10, L: 6}}
	c := bestCandidate(10, 10, []int{0, 1}, parts)
	assert.Equal(t, fitWidth, c.fit)
	assert.Equal(t, 1, c.idx)
}

func TestBestCandidate_TieKeepsWorklistOrder(t *testing.T) {
	parts := []model.Size{{W: 4, L: 6}, {W: 4, L: 6}}
	c := bestCandidate(10, 10, []int{1, 0}, parts)
	assert.Equal(t, fitSmaller, c.fit)
	assert.Equal(t, 1, c.idx)
}

func TestRecursivePack_SplitsLeftoverLength(t *testing.T) {
	// The width-exact part splits off the band above it, which the
	// lower-priority part then fills exactly.
	group := model.Group{
		1: {{W: 6, L: 10}},
		2: {{W: 4, L: 10}},
	}
	indices := model.IndexGroup{1: {0}, 2: {0}}
	result := model.Placements{}

	recursivePack(0, 0, 10, 10, group, indices, result)

	require.Len(t, result[1], 1)
	assert.Equal(t, model.Rectangle{X: 0, Y: 0, W: 10, L: 6, Idx: 0}, result[1][0])
	require.Len(t, result[2], 1)
	assert.Equal(t, model.Rectangle{X: 0, Y: 6, W: 10, L: 4, Idx: 0}, result[2][0])
	assert.Empty(t, indices[1])
	assert.Empty(t, indices[2])
}

func TestRecursivePack_HigherPriorityWins(t *testing.T) {
	// Both buckets hold an identical part; the lower priority number is
	// scanned first and places its copy.
	group := model.Group{
		1: {{W: 4, L: 6}},
		2: {{W: 4, L: 6}},
	}
	indices := model.IndexGroup{1: {0}, 2: {0}}
	result := model.Placements{}

	recursivePack(0, 0, 4, 6, group, indices, result)

	require.Len(t, result[1], 1)
	assert.Empty(t, result[2])
	assert.Empty(t, indices[1])
	assert.Equal(t, []int{0}, indices[2])
}

func TestRecursivePack_SmallerFitRecursesBothLeftovers(t *testing.T) {
	group := model.Group{1: {{W: 4, L: 4}, {W: 4, L: 4}}}
	indices := model.IndexGroup{1: {0, 1}}
	result := model.Placements{}

	recursivePack(0, 0, 10, 10, group, indices, result)

	// The first square goes to the corner, the second stacks above it in
	// the length-leftover branch.
	require.Len(t, result[1], 2)
	assert.Equal(t, model.Rectangle{X: 0, Y: 0, W: 4, L: 4, Idx: 0}, result[1][0])
	assert.Equal(t, model.Rectangle{X: 0, Y: 4, W: 4, L: 4, Idx: 1}, result[1][1])
}

func TestRecursivePack_NoFitLeavesWorklist(t *testing.T) {
	group := model.Group{1: {{W: 6, L: 8}}}
	indices := model.IndexGroup{1: {0}}
	result := model.Placements{}

	recursivePack(0, 0, 5, 5, group, indices, result)

	assert.Empty(t, result)
	assert.Equal(t, []int{0}, indices[1])
}
