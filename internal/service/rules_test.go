//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// findItem returns the first item matching category and name, or nil.
func findItem(items []model.PackingItem, category, name string) *model.PackingItem {
	for i := range items {
		if items[i].Category == category && items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}

func hasItem(items []model.PackingItem, category, name string) bool {
	return findItem(items, category, name) != nil
}

func TestBuildItems_Baseline(t *testing.T) {
	items := buildItems(ruleContext{})

	assert.True(t, hasItem(items, model.CategoryTech, "Phone charger"))
	assert.True(t, hasItem(items, model.CategoryTech, "Headphones"))
	assert.True(t, hasItem(items, model.CategoryToiletries, "Toothbrush"))
	assert.True(t, hasItem(items, model.CategoryMisc, "Travel pillow"))

	// Nothing flag-gated without flags.
	assert.False(t, hasItem(items, model.CategoryDocuments, "Passport"))
	assert.False(t, hasItem(items, model.CategoryTech, "Tablet"))
	assert.False(t, hasItem(items, model.CategoryClothes, "Underwear"))
	assert.False(t, hasItem(items, model.CategoryPokemonGo, "Power bank"))
}

func TestBuildItems_DeviceFlags(t *testing.T) {
	items := buildItems(ruleContext{params: model.TripParams{Tablet: true, WorkLaptop: true}})

	assert.True(t, hasItem(items, model.CategoryTech, "Tablet"))
	assert.True(t, hasItem(items, model.CategoryTech, "Tablet charger"))
	assert.True(t, hasItem(items, model.CategoryTech, "Tablet charging cable"))
	assert.True(t, hasItem(items, model.CategoryTech, "Work laptop"))
	assert.True(t, hasItem(items, model.CategoryTech, "Laptop charger"))
}

func TestBuildItems_International(t *testing.T) {
	items := buildItems(ruleContext{params: model.TripParams{International: true}})

	assert.True(t, hasItem(items, model.CategoryDocuments, "Passport"))
	assert.True(t, hasItem(items, model.CategoryDocuments, "Customs form"))
	assert.True(t, hasItem(items, model.CategoryMoney, "Currency"))
	assert.True(t, hasItem(items, model.CategoryTech, "Travel adapter"))
	assert.False(t, hasItem(items, model.CategoryMisc, "Eki stamp book"))
}

func TestBuildItems_JapanRequiresInternational(t *testing.T) {
	// The sub-flag alone is inert.
	domestic := buildItems(ruleContext{params: model.TripParams{JapanTrip: true}})
	assert.False(t, hasItem(domestic, model.CategoryMisc, "Eki stamp book"))
	assert.False(t, hasItem(domestic, model.CategoryDocuments, "Passport"))

	international := buildItems(ruleContext{params: model.TripParams{International: true, JapanTrip: true}})
	assert.True(t, hasItem(international, model.CategoryMisc, "Eki stamp book"))
}

func TestClothingItems_Rotation(t *testing.T) {
	items := clothingItems(ruleContext{days: 7, sets: 4})

	for _, name := range []string{"Underwear", "Socks", "Tops"} {
		it := findItem(items, model.CategoryClothes, name)
		if assert.NotNil(t, it, name) {
			assert.Equal(t, 4, it.Quantity, name)
		}
	}

	sleep := findItem(items, model.CategoryClothes, "Sleepwear")
	if assert.NotNil(t, sleep) {
		assert.Equal(t, 1, sleep.Quantity)
	}
}

func TestClothingItems_ZeroDayTrip(t *testing.T) {
	assert.Nil(t, clothingItems(ruleContext{days: 0, sets: 0}))
}

func TestClothingItems_Bottoms(t *testing.T) {
	tests := []struct {
		name       string
		min, max   *float64
		sets       int
		wantJeans  bool
		wantShorts bool
		bottomsQty int
	}{
		{name: "cold trip gets jeans", min: f(10), max: f(15), sets: 4, wantJeans: true},
		{name: "hot trip gets shorts", min: f(20), max: f(30), sets: 4, wantShorts: true},
		{name: "cold and hot gets both", min: f(10), max: f(30), sets: 4, wantJeans: true, wantShorts: true},
		{name: "mild trip falls back to bottoms", min: f(20), max: f(22), sets: 4, bottomsQty: 2},
		{name: "bottoms quantity rounds up", min: f(20), max: f(22), sets: 5, bottomsQty: 3},
		{name: "no weather falls back to bottoms", sets: 1, bottomsQty: 1},
		{name: "jeans boundary at 18", min: f(18), max: f(22), sets: 2, wantJeans: true},
		{name: "shorts boundary at 24", min: f(20), max: f(24), sets: 2, wantShorts: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := clothingItems(ruleContext{
				days:    5,
				sets:    tt.sets,
				weather: model.WeatherSummary{OverallMin: tt.min, OverallMax: tt.max},
			})

			jeans := findItem(items, model.CategoryClothes, "Jeans")
			shorts := findItem(items, model.CategoryClothes, "Shorts")
			bottoms := findItem(items, model.CategoryClothes, "Bottoms")

			assert.Equal(t, tt.wantJeans, jeans != nil, "jeans")
			assert.Equal(t, tt.wantShorts, shorts != nil, "shorts")
			if tt.bottomsQty > 0 {
				if assert.NotNil(t, bottoms) {
					assert.Equal(t, tt.bottomsQty, bottoms.Quantity)
				}
			} else {
				assert.Nil(t, bottoms)
			}
			if shorts != nil {
				assert.Equal(t, 2, shorts.Quantity)
			}
		})
	}
}

func TestClothingItems_Singlets(t *testing.T) {
	tests := []struct {
		name  string
		humid bool
		max   *float64
		sets  int
		want  int
	}{
		{name: "humid and hot", humid: true, max: f(30), sets: 1, want: 1},
		{name: "quantity capped at two", humid: true, max: f(30), sets: 5, want: 2},
		{name: "humid but mild", humid: true, max: f(22), sets: 4, want: 0},
		{name: "hot but dry", humid: false, max: f(30), sets: 4, want: 0},
		{name: "boundary at 26", humid: true, max: f(26), sets: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := clothingItems(ruleContext{
				days:    5,
				sets:    tt.sets,
				weather: model.WeatherSummary{AnyHumid: tt.humid, OverallMax: tt.max},
			})
			singlets := findItem(items, model.CategoryClothes, "Singlets")
			if tt.want == 0 {
				assert.Nil(t, singlets)
				return
			}
			if assert.NotNil(t, singlets) {
				assert.Equal(t, tt.want, singlets.Quantity)
			}
		})
	}
}

func TestWeatherItems_OuterwearTiers(t *testing.T) {
	tests := []struct {
		name string
		min  *float64
		want []string
	}{
		{name: "freezing", min: f(-2), want: []string{"Warm jacket", "Warm layer (jumper or hoodie)"}},
		{name: "tier boundary at 5", min: f(5), want: []string{"Warm jacket", "Warm layer (jumper or hoodie)"}},
		{name: "cool", min: f(8), want: []string{"Light jacket", "Warm layer (jumper or hoodie)"}},
		{name: "tier boundary at 12", min: f(12), want: []string{"Light jacket", "Warm layer (jumper or hoodie)"}},
		{name: "mild", min: f(14), want: []string{"Light layer"}},
		{name: "tier boundary at 16", min: f(16), want: []string{"Light layer"}},
		{name: "warm gets nothing", min: f(17), want: nil},
		{name: "no temperature gets nothing", min: nil, want: nil},
	}

	outerwear := []string{"Warm jacket", "Light jacket", "Warm layer (jumper or hoodie)", "Light layer"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := weatherItems(model.WeatherSummary{OverallMin: tt.min})
			var got []string
			for _, name := range outerwear {
				if hasItem(items, model.CategoryClothes, name) {
					got = append(got, name)
				}
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestWeatherItems_ColdAccessories(t *testing.T) {
	cold := weatherItems(model.WeatherSummary{OverallMin: f(10)})
	assert.True(t, hasItem(cold, model.CategoryClothes, "Beanie"))
	assert.True(t, hasItem(cold, model.CategoryClothes, "Scarf"))
	assert.True(t, hasItem(cold, model.CategoryClothes, "Gloves"))

	mild := weatherItems(model.WeatherSummary{OverallMin: f(11)})
	assert.False(t, hasItem(mild, model.CategoryClothes, "Beanie"))
}

func TestWeatherItems_RainAndSun(t *testing.T) {
	items := weatherItems(model.WeatherSummary{AnyRain: true, AnySun: true})
	assert.True(t, hasItem(items, model.CategoryMisc, "Umbrella or rain jacket"))
	assert.True(t, hasItem(items, model.CategoryMisc, "Sunglasses"))

	none := weatherItems(model.WeatherSummary{})
	assert.False(t, hasItem(none, model.CategoryMisc, "Umbrella or rain jacket"))
	assert.False(t, hasItem(none, model.CategoryMisc, "Sunglasses"))
}

func TestWeatherItems_HatBands(t *testing.T) {
	tests := []struct {
		name string
		max  *float64
		want string
	}{
		{name: "scorching", max: f(32), want: "Hat"},
		{name: "hot", max: f(28), want: "Hat (optional)"},
		{name: "just below optional band", max: f(27), want: ""},
		{name: "no temperature", max: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := weatherItems(model.WeatherSummary{OverallMax: tt.max})
			assert.Equal(t, tt.want == "Hat", hasItem(items, model.CategoryClothes, "Hat"))
			assert.Equal(t, tt.want == "Hat (optional)", hasItem(items, model.CategoryClothes, "Hat (optional)"))
		})
	}
}

func TestPokemonGoItems(t *testing.T) {
	t.Run("inactive without the segment flag", func(t *testing.T) {
		items := pokemonGoItems(ruleContext{params: model.TripParams{PoGoEggWalker: true}})
		assert.Nil(t, items)
	})

	t.Run("base kit", func(t *testing.T) {
		items := pokemonGoItems(ruleContext{pokemonGo: true})
		assert.True(t, hasItem(items, model.CategoryClothes, "Hat"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Power bank"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Pokémon GO Plus"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Sunscreen"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Satchel"))
		assert.False(t, hasItem(items, model.CategoryPokemonGo, "Alt phone"))
	})

	t.Run("egg walker devices come in pairs", func(t *testing.T) {
		items := pokemonGoItems(ruleContext{pokemonGo: true, params: model.TripParams{PoGoEggWalker: true}})

		walker := findItem(items, model.CategoryPokemonGo, "Egg walker")
		if assert.NotNil(t, walker) {
			assert.Equal(t, 1, walker.Quantity)
		}
		phone := findItem(items, model.CategoryPokemonGo, "Egg walker phone")
		if assert.NotNil(t, phone) {
			assert.Equal(t, 2, phone.Quantity)
		}
		cable := findItem(items, model.CategoryPokemonGo, "Egg walker charging cable")
		if assert.NotNil(t, cable) {
			assert.Equal(t, 2, cable.Quantity)
		}
	})

	t.Run("remaining sub flags", func(t *testing.T) {
		items := pokemonGoItems(ruleContext{pokemonGo: true, params: model.TripParams{
			PoGoTradeList:  true,
			PoGoAltAccount: true,
			PoGoPartner:    true,
		}})
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Printed trade list"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Lanyard"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Alt phone"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Alt phone charging cable"))
		assert.True(t, hasItem(items, model.CategoryPokemonGo, "Partner Pokémon plush"))
	})
}

func TestAnyPokemonGo(t *testing.T) {
	assert.False(t, anyPokemonGo(nil))
	assert.False(t, anyPokemonGo([]model.TripSegment{{Location: "Osaka"}}))
	assert.True(t, anyPokemonGo([]model.TripSegment{
		{Location: "Osaka"},
		{Location: "Tokyo", PokemonGo: true},
	}))
}
