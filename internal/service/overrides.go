package service

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// ApplyOverrides replaces each item's bag with its stored override, when one
// exists for the item's identity key (category, name). Items without an
// override keep the engine default. The input order is preserved and the
// input slice is not mutated.
//
// Application is idempotent, and commutative across distinct identity keys.
func ApplyOverrides(items []model.PackingItem, overrides map[model.ItemKey]model.Bag) []model.PackingItem {
	out := make([]model.PackingItem, len(items))
	copy(out, items)
	if len(overrides) == 0 {
		return out
	}
	for i := range out {
		if bag, ok := overrides[out[i].Key()]; ok && bag.Valid() {
			out[i].Bag = bag
		}
	}
	return out
}
