//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

func TestPacklistService_Generate_SameDayTrip(t *testing.T) {
	s := NewPacklistService()

	list := s.Generate([]model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-01"},
	}, model.TripParams{})

	assert.Equal(t, 1, list.Days)
	assert.Equal(t, 1, list.SetsNeeded)
	assert.Equal(t, model.Window{Start: "2024-03-01", End: "2024-03-01"}, list.Window)

	underwear := findItem(list.Items, model.CategoryClothes, "Underwear")
	if assert.NotNil(t, underwear) {
		assert.Equal(t, 1, underwear.Quantity)
	}
}

func TestPacklistService_Generate_ColdRainyTrip(t *testing.T) {
	s := NewPacklistService()

	list := s.Generate([]model.TripSegment{
		{
			Location:   "Osaka",
			StartDate:  "2024-03-01",
			EndDate:    "2024-03-08",
			TempMin:    "4",
			TempMax:    "30",
			RainLikely: true,
		},
	}, model.TripParams{Washes: 1})

	assert.Equal(t, 8, list.Days)
	assert.Equal(t, 4, list.SetsNeeded)

	for _, name := range []string{"Warm jacket", "Warm layer (jumper or hoodie)", "Beanie", "Scarf", "Gloves"} {
		assert.True(t, hasItem(list.Items, model.CategoryClothes, name), name)
	}
	assert.True(t, hasItem(list.Items, model.CategoryMisc, "Umbrella or rain jacket"))
	assert.True(t, hasItem(list.Items, model.CategoryClothes, "Hat (optional)"))
	assert.False(t, hasItem(list.Items, model.CategoryMisc, "Sunglasses"))

	// Min 4 and max 30 span both the jeans and shorts rules.
	assert.True(t, hasItem(list.Items, model.CategoryClothes, "Jeans"))
	assert.True(t, hasItem(list.Items, model.CategoryClothes, "Shorts"))
	assert.False(t, hasItem(list.Items, model.CategoryClothes, "Bottoms"))
}

func TestPacklistService_Generate_HatDuplicateCollapses(t *testing.T) {
	s := NewPacklistService()

	// A hot sunny trip to a Pokémon GO destination triggers the hat rule twice.
	list := s.Generate([]model.TripSegment{
		{
			Location:     "Las Vegas",
			StartDate:    "2024-07-01",
			EndDate:      "2024-07-05",
			TempMin:      "25",
			TempMax:      "40",
			HotSunLikely: true,
			PokemonGo:    true,
		},
	}, model.TripParams{})

	assert.True(t, list.PokemonGo)

	count := 0
	for _, it := range list.Items {
		if it.Category == model.CategoryClothes && it.Name == "Hat" {
			count++
			assert.Equal(t, 2, it.Quantity)
		}
	}
	assert.Equal(t, 1, count, "hat entries after consolidation")
}

func TestPacklistService_Generate_Deterministic(t *testing.T) {
	s := NewPacklistService()

	segments := []model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-08", TempMin: "4", TempMax: "14", PokemonGo: true},
		{Location: "Tokyo", StartDate: "2024-03-08", EndDate: "2024-03-12", TempMin: "8", TempMax: "16"},
	}
	params := model.TripParams{Washes: 1, SpareSet: true, International: true, JapanTrip: true, Tablet: true}

	first := s.Generate(segments, params)
	second := s.Generate(segments, params)
	assert.Equal(t, first, second)
}

func TestPacklistService_Generate_CanonicalOrder(t *testing.T) {
	s := NewPacklistService()

	list := s.Generate([]model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-08", TempMin: "4", TempMax: "14", RainLikely: true},
	}, model.TripParams{International: true})

	items := list.Items
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		inOrder := a.Bag < b.Bag ||
			(a.Bag == b.Bag && a.Category < b.Category) ||
			(a.Bag == b.Bag && a.Category == b.Category && a.Name < b.Name)
		assert.True(t, inOrder, "items out of order at %d: %+v before %+v", i, a, b)
	}
}

func TestPacklistService_Generate_NoDates(t *testing.T) {
	s := NewPacklistService()

	list := s.Generate([]model.TripSegment{
		{Location: "Somewhere"},
	}, model.TripParams{Washes: 2})

	assert.Equal(t, 0, list.Days)
	assert.Equal(t, 0, list.SetsNeeded)
	assert.Equal(t, model.Window{}, list.Window)

	// Baseline still packs; rotation clothing does not.
	assert.True(t, hasItem(list.Items, model.CategoryTech, "Phone charger"))
	assert.False(t, hasItem(list.Items, model.CategoryClothes, "Underwear"))
}

func TestPacklistService_Generate_CachedResultsMatch(t *testing.T) {
	s := NewPacklistService(WithCache(10, time.Minute))

	segments := []model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-08"},
	}
	params := model.TripParams{Washes: 1}

	first := s.Generate(segments, params)
	cached := s.Generate(segments, params)
	assert.Equal(t, first, cached)

	s.InvalidateCache()
	fresh := s.Generate(segments, params)
	assert.Equal(t, first, fresh)
}

func TestPacklistService_Generate_DistinctRequestsDistinctResults(t *testing.T) {
	s := NewPacklistService(WithCache(10, time.Minute))

	short := s.Generate([]model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-02"},
	}, model.TripParams{})
	long := s.Generate([]model.TripSegment{
		{Location: "Osaka", StartDate: "2024-03-01", EndDate: "2024-03-08"},
	}, model.TripParams{})

	assert.Equal(t, 2, short.Days)
	assert.Equal(t, 8, long.Days)
}

func TestRequestDigest(t *testing.T) {
	segments := []model.TripSegment{{Location: "Osaka", StartDate: "2024-03-01"}}
	params := model.TripParams{Washes: 1}

	a := requestDigest(segments, params)
	b := requestDigest(segments, params)
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)

	c := requestDigest(segments, model.TripParams{Washes: 2})
	assert.NotEqual(t, a, c)
}
