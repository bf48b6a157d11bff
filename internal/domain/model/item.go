package model

// Bag identifies which physical bag an item is packed into.
type Bag string

const (
	// BagCarryOn is the cabin bag.
	BagCarryOn Bag = "carryOn"
	// BagChecked is the checked (hold) bag.
	BagChecked Bag = "checked"
)

// Valid reports whether b is one of the two known bags.
func (b Bag) Valid() bool {
	return b == BagCarryOn || b == BagChecked
}

// Title returns the section title used on screen and in text exports.
func (b Bag) Title() string {
	if b == BagCarryOn {
		return "Carry on"
	}
	return "Checked baggage"
}

// Item categories. The set is open: the engine only ever emits these, but
// nothing downstream restricts itself to them.
const (
	CategoryClothes    = "Clothes"
	CategoryDocuments  = "Documents"
	CategoryMisc       = "Misc"
	CategoryMoney      = "Money"
	CategoryPokemonGo  = "Pokémon GO"
	CategoryTech       = "Tech"
	CategoryToiletries = "Toiletries"
)

// keyDelimiter joins key parts in persisted storage keys. Item names
// containing the delimiter would collide; existing persisted state depends
// on this value, so it must not change.
const keyDelimiter = "__"

// PackingItem is one entry of a generated packing list.
//
// @Description A single packing-list entry
type PackingItem struct {
	// Category is the grouping label shown above the item.
	Category string `json:"category" example:"Clothes"`
	// Name is the human-readable item name.
	Name string `json:"name" example:"Jeans"`
	// Quantity is how many to pack. Items never surface with quantity < 1.
	Quantity int `json:"quantity" example:"1"`
	// Bag is the bag the item currently sits in: the engine default,
	// unless a stored override moved it.
	Bag Bag `json:"bag" example:"checked"`
} // @name PackingItem

// ItemKey is the bag-independent identity of an item kind.
// Bag overrides are stored and looked up under this key.
type ItemKey struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// MergeKey is the full dedup key for consolidating engine output.
// Unlike ItemKey it includes the bag: the same item kind sitting in two
// different bags stays as two entries.
type MergeKey struct {
	Bag      Bag
	Category string
	Name     string
}

// Key returns the item's bag-independent identity.
func (p PackingItem) Key() ItemKey {
	return ItemKey{Category: p.Category, Name: p.Name}
}

// MergeKey returns the item's consolidation key.
func (p PackingItem) MergeKey() MergeKey {
	return MergeKey{Bag: p.Bag, Category: p.Category, Name: p.Name}
}

// StorageKey returns the persisted identity-key form, category__name.
func (k ItemKey) StorageKey() string {
	return k.Category + keyDelimiter + k.Name
}

// StateKey returns the persisted packed-state key, bag__category__name.
func (p PackingItem) StateKey() string {
	return string(p.Bag) + keyDelimiter + p.Category + keyDelimiter + p.Name
}
