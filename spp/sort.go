package spp

import (
	"fmt"
	"sort"

	"github.com/redb0/sbppprg/model"
)

// SortKey selects which normalized component orders the per-bucket worklists.
type SortKey string

const (
	// SortWidth orders worklists by descending normalized width.
	SortWidth SortKey = "width"
	// SortLength orders worklists by descending normalized length.
	SortLength SortKey = "length"
)

// sortParts normalizes every part in place so that W <= L and builds the
// per-(thickness, priority) index lists, sorted in descending order of the
// component picked by key. When indices already holds a list for a bucket,
// only the indices still present in it are re-sorted; this is how the
// worklists are rebuilt after a rollback. The sort is stable, so parts with
// equal keys keep their relative order.
func sortParts(parts model.Set, key SortKey, indices model.IndexSet) (model.IndexSet, error) {
	var byLength bool
	switch key {
	case SortWidth:
		byLength = false
	case SortLength:
		byLength = true
	default:
		return nil, fmt.Errorf("%w, got %q", ErrSortKey, string(key))
	}

	if indices == nil {
		indices = make(model.IndexSet, len(parts))
	}

	for h, group := range parts {
		if _, ok := indices[h]; !ok {
			indices[h] = make(model.IndexGroup, len(group))
		}
		for p, list := range group {
			for i, r := range list {
				if r.W > r.L {
					list[i] = model.Size{W: r.L, L: r.W}
				}
			}
			component := func(i int) float64 {
				if byLength {
					return list[i].L
				}
				return list[i].W
			}
			idx, ok := indices[h][p]
			if !ok {
				idx = make([]int, len(list))
				for i := range idx {
					idx[i] = i
				}
			}
			sort.SliceStable(idx, func(a, b int) bool {
				return component(idx[a]) > component(idx[b])
			})
			indices[h][p] = idx
		}
	}

	return indices, nil
}
