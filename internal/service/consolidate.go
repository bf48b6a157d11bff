package service

import (
	"sort"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// Consolidate collapses raw engine output into the canonical list: items with
// a non-positive quantity are dropped, duplicates sharing a merge key
// (bag, category, name) are summed into the first-seen entry, and the result
// is sorted by bag, then category, then name, all lexicographically ascending.
//
// Consolidating an already-consolidated list is a no-op.
func Consolidate(items []model.PackingItem) []model.PackingItem {
	merged := make([]model.PackingItem, 0, len(items))
	index := make(map[model.MergeKey]int, len(items))

	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		key := it.MergeKey()
		if i, ok := index[key]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, it)
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Bag != b.Bag {
			return a.Bag < b.Bag
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})

	return merged
}
