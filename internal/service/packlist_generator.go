package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/service/cache"
)

// PacklistGenerator defines the interface for packing-list operations.
type PacklistGenerator interface {
	// Generate derives the consolidated, canonically ordered packing list
	// for the given trip, with no overrides applied.
	Generate(segments []model.TripSegment, params model.TripParams) model.Packlist
	// ApplyOverrides applies identity-keyed bag overrides on top of the
	// engine's default bag assignments.
	ApplyOverrides(items []model.PackingItem, overrides map[model.ItemKey]model.Bag) []model.PackingItem
	// Export renders the item list as the copy/print text format.
	Export(items []model.PackingItem) string
	// InvalidateCache clears the generation-result cache.
	InvalidateCache()
}

// Option configures a PacklistService.
type Option func(*PacklistService)

// PacklistService implements PacklistGenerator by composing the pure
// derivation pipeline: date/window utilities, weather aggregation, clothing
// calculation, the rule engine, and consolidation. Generation is
// deterministic, so results can be cached by request digest.
type PacklistService struct {
	cache cache.Cache
}

// NewPacklistService creates a new PacklistService with the given options.
func NewPacklistService(opts ...Option) *PacklistService {
	s := &PacklistService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PacklistService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PacklistService) {
		s.cache = c
	}
}

// Generate derives the packing list for the given trip state.
func (s *PacklistService) Generate(segments []model.TripSegment, params model.TripParams) model.Packlist {
	var key string
	if s.cache != nil {
		key = requestDigest(segments, params)
		if key != "" {
			if result, ok := s.cache.Get(key); ok {
				return result
			}
		}
	}

	result := generate(segments, params)

	if s.cache != nil && key != "" {
		s.cache.Set(key, result)
	}
	return result
}

// ApplyOverrides applies stored bag overrides to a generated list.
func (s *PacklistService) ApplyOverrides(items []model.PackingItem, overrides map[model.ItemKey]model.Bag) []model.PackingItem {
	return ApplyOverrides(items, overrides)
}

// Export renders the item list as grouped plain text.
func (s *PacklistService) Export(items []model.PackingItem) string {
	return ExportText(items)
}

// InvalidateCache clears the generation-result cache.
func (s *PacklistService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// generate is the pure composed pipeline. Identical inputs always yield a
// deeply equal, order-identical result.
func generate(segments []model.TripSegment, params model.TripParams) model.Packlist {
	window := OverallWindow(segments)
	weather := SummarizeWeather(segments)
	days := TripDays(window.Start, window.End)
	sets := ClothingSets(days, params.Washes, params.SpareSet)
	pokemonGo := anyPokemonGo(segments)

	raw := buildItems(ruleContext{
		params:    params,
		weather:   weather,
		days:      days,
		sets:      sets,
		pokemonGo: pokemonGo,
	})

	return model.Packlist{
		Items:      Consolidate(raw),
		Days:       days,
		SetsNeeded: sets,
		Window:     window,
		Weather:    weather,
		PokemonGo:  pokemonGo,
	}
}

// requestDigest produces a stable cache key for a generation request.
// Marshaling these types cannot realistically fail; an empty key disables
// caching for the request.
func requestDigest(segments []model.TripSegment, params model.TripParams) string {
	payload, err := json.Marshal(struct {
		Segments []model.TripSegment `json:"segments"`
		Params   model.TripParams    `json:"params"`
	}{segments, params})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
