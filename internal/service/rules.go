package service

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// ruleContext carries the derived trip aggregates the rules branch on.
type ruleContext struct {
	params    model.TripParams
	weather   model.WeatherSummary
	days      int
	sets      int
	pokemonGo bool
}

// item is a shorthand constructor for engine output.
func item(bag model.Bag, category, name string, qty int) model.PackingItem {
	return model.PackingItem{Bag: bag, Category: category, Name: name, Quantity: qty}
}

// baselineItems are packed on every trip regardless of answers or weather.
var baselineItems = []model.PackingItem{
	// Carry-on electronics
	item(model.BagCarryOn, model.CategoryTech, "Phone charger", 1),
	item(model.BagCarryOn, model.CategoryTech, "Charging cable", 1),
	item(model.BagCarryOn, model.CategoryTech, "Headphones", 1),
	item(model.BagCarryOn, model.CategoryTech, "Kindle", 1),
	item(model.BagCarryOn, model.CategoryTech, "Smart watch charger", 1),
	// Toiletry staples
	item(model.BagCarryOn, model.CategoryToiletries, "Hand sanitizer", 1),
	item(model.BagCarryOn, model.CategoryToiletries, "Face masks", 1),
	item(model.BagCarryOn, model.CategoryToiletries, "Paracetamol", 1),
	item(model.BagCarryOn, model.CategoryToiletries, "Lip balm", 1),
	item(model.BagChecked, model.CategoryToiletries, "Toothbrush", 1),
	item(model.BagChecked, model.CategoryToiletries, "Toothpaste", 1),
	item(model.BagChecked, model.CategoryToiletries, "Deodorant", 1),
	item(model.BagChecked, model.CategoryToiletries, "Body wash", 1),
	item(model.BagChecked, model.CategoryToiletries, "Beard wash", 1),
	item(model.BagChecked, model.CategoryToiletries, "Vitamins", 1),
	item(model.BagChecked, model.CategoryToiletries, "Band aids", 1),
	item(model.BagChecked, model.CategoryToiletries, "Condoms", 1),
	item(model.BagChecked, model.CategoryMisc, "Travel pillow", 1),
}

// outerwearTier is one band of the jacket threshold chain: it fires when the
// overall minimum temperature is at or below the bound. The chain is a
// single-branch lookup, first match wins.
type outerwearTier struct {
	maxMin float64
	items  []model.PackingItem
}

var outerwearTiers = []outerwearTier{
	{maxMin: 5, items: []model.PackingItem{
		item(model.BagChecked, model.CategoryClothes, "Warm jacket", 1),
		item(model.BagChecked, model.CategoryClothes, "Warm layer (jumper or hoodie)", 1),
	}},
	{maxMin: 12, items: []model.PackingItem{
		item(model.BagChecked, model.CategoryClothes, "Light jacket", 1),
		item(model.BagChecked, model.CategoryClothes, "Warm layer (jumper or hoodie)", 1),
	}},
	{maxMin: 16, items: []model.PackingItem{
		item(model.BagChecked, model.CategoryClothes, "Light layer", 1),
	}},
}

// buildItems evaluates every packing rule against the rule context and
// returns the raw, unconsolidated item list. Rules are independent and
// append-only; duplicates and ordering are resolved downstream by
// Consolidate. Sub-flags are never consulted without their parent flag.
func buildItems(rc ruleContext) []model.PackingItem {
	items := make([]model.PackingItem, 0, 48)
	items = append(items, baselineItems...)

	if rc.params.Tablet {
		items = append(items,
			item(model.BagCarryOn, model.CategoryTech, "Tablet", 1),
			item(model.BagChecked, model.CategoryTech, "Tablet charger", 1),
			item(model.BagChecked, model.CategoryTech, "Tablet charging cable", 1),
		)
	}

	if rc.params.WorkLaptop {
		items = append(items,
			item(model.BagCarryOn, model.CategoryTech, "Work laptop", 1),
			item(model.BagChecked, model.CategoryTech, "Laptop charger", 1),
		)
	}

	if rc.params.International {
		items = append(items,
			item(model.BagChecked, model.CategoryTech, "Travel adapter", 1),
			item(model.BagChecked, model.CategoryTech, "Chromecast", 1),
			item(model.BagCarryOn, model.CategoryDocuments, "Passport", 1),
			item(model.BagCarryOn, model.CategoryDocuments, "Customs form", 1),
			item(model.BagCarryOn, model.CategoryDocuments, "Pen", 1),
			item(model.BagCarryOn, model.CategoryMoney, "Currency", 1),
			item(model.BagCarryOn, model.CategoryMoney, "Money pouch", 1),
		)
		if rc.params.JapanTrip {
			items = append(items, item(model.BagCarryOn, model.CategoryMisc, "Eki stamp book", 1))
		}
	}

	items = append(items, clothingItems(rc)...)
	items = append(items, weatherItems(rc.weather)...)
	items = append(items, pokemonGoItems(rc)...)

	return items
}

// clothingItems covers the rotation-based clothing rules: they only apply to
// trips with a positive day count.
func clothingItems(rc ruleContext) []model.PackingItem {
	if rc.days <= 0 {
		return nil
	}

	items := []model.PackingItem{
		item(model.BagChecked, model.CategoryClothes, "Underwear", rc.sets),
		item(model.BagChecked, model.CategoryClothes, "Socks", rc.sets),
		item(model.BagChecked, model.CategoryClothes, "Tops", rc.sets),
		item(model.BagChecked, model.CategoryClothes, "Sleepwear", 1),
	}

	w := rc.weather
	needsJeans := w.OverallMin != nil && *w.OverallMin <= 18
	needsShorts := w.OverallMax != nil && *w.OverallMax >= 24
	if needsJeans {
		items = append(items, item(model.BagChecked, model.CategoryClothes, "Jeans", 1))
	}
	if needsShorts {
		items = append(items, item(model.BagChecked, model.CategoryClothes, "Shorts", 2))
	}
	if !needsJeans && !needsShorts {
		qty := (rc.sets + 1) / 2
		if qty < 1 {
			qty = 1
		}
		items = append(items, item(model.BagChecked, model.CategoryClothes, "Bottoms", qty))
	}

	if w.AnyHumid && w.OverallMax != nil && *w.OverallMax >= 26 {
		qty := rc.sets
		if qty < 1 {
			qty = 1
		}
		if qty > 2 {
			qty = 2
		}
		items = append(items, item(model.BagChecked, model.CategoryClothes, "Singlets", qty))
	}

	return items
}

// weatherItems covers the layered temperature tiers plus the rain and sun
// rules. The outerwear chain, the cold-accessory band and the hat bands are
// evaluated independently of each other; only the outerwear chain itself is
// first-match-wins.
func weatherItems(w model.WeatherSummary) []model.PackingItem {
	var items []model.PackingItem

	if w.OverallMin != nil {
		for _, tier := range outerwearTiers {
			if *w.OverallMin <= tier.maxMin {
				items = append(items, tier.items...)
				break
			}
		}
		if *w.OverallMin <= 10 {
			items = append(items,
				item(model.BagChecked, model.CategoryClothes, "Beanie", 1),
				item(model.BagChecked, model.CategoryClothes, "Scarf", 1),
				item(model.BagChecked, model.CategoryClothes, "Gloves", 1),
			)
		}
	}

	if w.AnyRain {
		items = append(items, item(model.BagChecked, model.CategoryMisc, "Umbrella or rain jacket", 1))
	}
	if w.AnySun {
		items = append(items, item(model.BagCarryOn, model.CategoryMisc, "Sunglasses", 1))
	}

	if w.OverallMax != nil {
		switch {
		case *w.OverallMax >= 32:
			items = append(items, item(model.BagChecked, model.CategoryClothes, "Hat", 1))
		case *w.OverallMax >= 28:
			items = append(items, item(model.BagChecked, model.CategoryClothes, "Hat (optional)", 1))
		}
	}

	return items
}

// pokemonGoItems covers the Pokémon GO rules. The parent flag is derived
// from the segments; every sub-flag is checked behind it.
func pokemonGoItems(rc ruleContext) []model.PackingItem {
	if !rc.pokemonGo {
		return nil
	}

	// The hat shares its merge key with the weather hat rule on purpose:
	// duplicates collapse during consolidation.
	items := []model.PackingItem{
		item(model.BagChecked, model.CategoryClothes, "Hat", 1),
		item(model.BagCarryOn, model.CategoryPokemonGo, "Power bank", 1),
		item(model.BagCarryOn, model.CategoryPokemonGo, "Pokémon GO Plus", 1),
		item(model.BagChecked, model.CategoryPokemonGo, "Sunscreen", 1),
		item(model.BagCarryOn, model.CategoryPokemonGo, "Satchel", 1),
	}

	if rc.params.PoGoTradeList {
		items = append(items,
			item(model.BagCarryOn, model.CategoryPokemonGo, "Printed trade list", 1),
			item(model.BagCarryOn, model.CategoryPokemonGo, "Lanyard", 1),
		)
	}
	if rc.params.PoGoAltAccount {
		items = append(items,
			item(model.BagCarryOn, model.CategoryPokemonGo, "Alt phone", 1),
			item(model.BagChecked, model.CategoryPokemonGo, "Alt phone charging cable", 1),
		)
	}
	if rc.params.PoGoEggWalker {
		items = append(items,
			item(model.BagCarryOn, model.CategoryPokemonGo, "Egg walker", 1),
			item(model.BagCarryOn, model.CategoryPokemonGo, "Egg walker phone", 2),
			item(model.BagChecked, model.CategoryPokemonGo, "Egg walker charging cable", 2),
		)
	}
	if rc.params.PoGoPartner {
		items = append(items, item(model.BagChecked, model.CategoryPokemonGo, "Partner Pokémon plush", 1))
	}

	return items
}

// anyPokemonGo derives the trip-wide Pokémon GO flag from the segments.
func anyPokemonGo(segments []model.TripSegment) bool {
	for _, seg := range segments {
		if seg.PokemonGo {
			return true
		}
	}
	return false
}
