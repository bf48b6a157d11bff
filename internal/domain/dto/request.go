// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// GeneratePacklistRequest represents the JSON request body for the packing
// list generation and export endpoints.
//
// At least one segment is required. Trip-wide parameters are optional and
// default to zero values.
//
// @Description Request to generate a packing list for a trip
type GeneratePacklistRequest struct {
	// Segments is the ordered list of trip segments.
	Segments []model.TripSegment `json:"segments" binding:"required,min=1"`
	// Params carries the trip-wide knobs (washes, spare set, international, ...).
	Params model.TripParams `json:"params"`
} // @name GeneratePacklistRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNoSegments is returned when the request carries no trip segments.
	ErrNoSegments = &ValidationError{
		Field:   "segments",
		Message: "at least one trip segment is required",
	}
	// ErrSegmentLocation is returned when a segment has an empty location.
	ErrSegmentLocation = &ValidationError{
		Field:   "segments.location",
		Message: "location must not be empty",
	}
	// ErrInvalidBag is returned when a bag value is not a known bag.
	ErrInvalidBag = &ValidationError{
		Field:   "bag",
		Message: "must be one of: carryOn, checked",
	}
	// ErrEmptyItemKey is returned when an item identity is incomplete.
	ErrEmptyItemKey = &ValidationError{
		Field:   "category, name",
		Message: "category and name must not be empty",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
//
// Date strings are deliberately not validated here: the engine tolerates
// malformed dates by treating them as absent.
func (r *GeneratePacklistRequest) Validate() error {
	if len(r.Segments) == 0 {
		return ErrNoSegments
	}
	for _, s := range r.Segments {
		if s.Location == "" {
			return ErrSegmentLocation
		}
	}
	return nil
}

// SetOverrideRequest represents the JSON request body for storing a bag
// override for one item identity.
type SetOverrideRequest struct {
	// Category is the item's category.
	Category string `json:"category" binding:"required" example:"Clothes"`
	// Name is the item's display name.
	Name string `json:"name" binding:"required" example:"Hat"`
	// Bag is the destination bag for the item.
	Bag model.Bag `json:"bag" binding:"required" example:"carryOn"`
} // @name SetOverrideRequest

// Validate checks the override identity and bag value.
func (r *SetOverrideRequest) Validate() error {
	if r.Category == "" || r.Name == "" {
		return ErrEmptyItemKey
	}
	if !r.Bag.Valid() {
		return ErrInvalidBag
	}
	return nil
}

// ItemKey returns the item identity the override applies to.
func (r *SetOverrideRequest) ItemKey() model.ItemKey {
	return model.ItemKey{Category: r.Category, Name: r.Name}
}

// SetPackedRequest represents the JSON request body for marking an item as
// packed or unpacked.
type SetPackedRequest struct {
	// Bag is the bag the item is assigned to.
	Bag model.Bag `json:"bag" binding:"required" example:"checked"`
	// Category is the item's category.
	Category string `json:"category" binding:"required" example:"Toiletries"`
	// Name is the item's display name.
	Name string `json:"name" binding:"required" example:"Toothbrush"`
	// Packed is the new packed state.
	Packed bool `json:"packed"`
} // @name SetPackedRequest

// Validate checks the item identity and bag value.
func (r *SetPackedRequest) Validate() error {
	if r.Category == "" || r.Name == "" {
		return ErrEmptyItemKey
	}
	if !r.Bag.Valid() {
		return ErrInvalidBag
	}
	return nil
}

// StateKey returns the persisted key identifying the item within its bag.
func (r *SetPackedRequest) StateKey() string {
	item := model.PackingItem{Bag: r.Bag, Category: r.Category, Name: r.Name}
	return item.StateKey()
}

// ResolveWeatherRequest represents the JSON request body for resolving
// per-segment weather from the external forecast provider.
type ResolveWeatherRequest struct {
	// Segments lists the segments to resolve; each needs a location and
	// at least one date.
	Segments []model.TripSegment `json:"segments" binding:"required,min=1"`
} // @name ResolveWeatherRequest

// Validate checks that every segment carries a location.
func (r *ResolveWeatherRequest) Validate() error {
	if len(r.Segments) == 0 {
		return ErrNoSegments
	}
	for _, s := range r.Segments {
		if s.Location == "" {
			return ErrSegmentLocation
		}
	}
	return nil
}
