// Package model defines the core domain entities for the packlist service.
package model

// TripSegment is one leg of a multi-stop trip. Date and temperature fields
// arrive as free text from the form; unparsable values are treated as absent
// by the derivation pipeline rather than rejected.
//
// @Description One destination of a trip with its date range and weather characteristics
type TripSegment struct {
	// Location is the free-text destination name, used only for weather lookup.
	Location string `json:"location" example:"Osaka"`
	// StartDate is the first day of this leg in YYYY-MM-DD form, or empty.
	StartDate string `json:"start_date" example:"2024-03-01"`
	// EndDate is the last day of this leg in YYYY-MM-DD form, or empty.
	EndDate string `json:"end_date" example:"2024-03-08"`
	// TempMin is the expected minimum temperature in degrees Celsius, or empty/unparsable.
	TempMin string `json:"temp_min" example:"4"`
	// TempMax is the expected maximum temperature in degrees Celsius, or empty/unparsable.
	TempMax string `json:"temp_max" example:"14"`
	// RainLikely indicates rain is expected at this destination.
	RainLikely bool `json:"rain_likely"`
	// HotSunLikely indicates strong sun is expected at this destination.
	HotSunLikely bool `json:"hot_sun_likely"`
	// HumidLikely indicates humid conditions are expected at this destination.
	HumidLikely bool `json:"humid_likely"`
	// PokemonGo marks this leg as a Pokémon GO destination. The trip-wide
	// flag is true if any segment sets it.
	PokemonGo bool `json:"pokemon_go"`
} // @name TripSegment

// TripParams holds the trip-wide answers consumed by the rule engine.
//
// Sub-flags are inert without their parent: JapanTrip only matters when
// International is set, and the four PoGo* flags only matter when at least
// one segment has its PokemonGo flag set.
//
// @Description Trip-wide packing questions
type TripParams struct {
	// Washes is the number of times laundry will be done during the trip.
	// Negative values are treated as zero.
	Washes int `json:"washes" example:"1"`
	// SpareSet adds one extra clothing set as a laundry-day buffer.
	SpareSet bool `json:"spare_set"`
	// International marks the trip as leaving the home country.
	International bool `json:"international"`
	// JapanTrip marks an international trip as going to Japan.
	JapanTrip bool `json:"japan_trip"`
	// Tablet brings the tablet and its charging gear.
	Tablet bool `json:"tablet"`
	// WorkLaptop brings the work laptop and its charger.
	WorkLaptop bool `json:"work_laptop"`
	// PoGoAltAccount brings the alt-account phone.
	PoGoAltAccount bool `json:"pogo_alt_account"`
	// PoGoEggWalker brings the egg-walking devices.
	PoGoEggWalker bool `json:"pogo_egg_walker"`
	// PoGoTradeList brings the printed trade list.
	PoGoTradeList bool `json:"pogo_trade_list"`
	// PoGoPartner brings the partner Pokémon plush.
	PoGoPartner bool `json:"pogo_partner"`
} // @name TripParams

// WeatherSummary is the trip-wide reduction of per-segment weather fields.
// OverallMin and OverallMax are nil when no segment carried a parseable value.
type WeatherSummary struct {
	OverallMin *float64 `json:"overall_min,omitempty"`
	OverallMax *float64 `json:"overall_max,omitempty"`
	AnyRain    bool     `json:"any_rain"`
	AnySun     bool     `json:"any_sun"`
	AnyHumid   bool     `json:"any_humid"`
}

// Window is the overall trip date window across all segments,
// empty strings when no segment has dates set.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Packlist is the complete result of a generation: the ordered item list plus
// the derived aggregates the UI displays alongside it.
//
// @Description Generated packing list with derived trip aggregates
type Packlist struct {
	// Items is the consolidated item list in canonical order
	// (bag, then category, then name).
	Items []PackingItem `json:"items"`
	// Days is the inclusive trip day count across the overall window.
	Days int `json:"days"`
	// SetsNeeded is the number of rotatable clothing sets.
	SetsNeeded int `json:"sets_needed"`
	// Window is the overall trip date window.
	Window Window `json:"window"`
	// Weather is the trip-wide weather summary the rules were evaluated against.
	Weather WeatherSummary `json:"weather"`
	// PokemonGo is the derived trip-wide Pokémon GO flag.
	PokemonGo bool `json:"pokemon_go"`
} // @name Packlist

// EmptyPacklist returns a Packlist with no items.
func EmptyPacklist() Packlist {
	return Packlist{Items: []PackingItem{}}
}
