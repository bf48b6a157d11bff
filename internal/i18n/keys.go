// Package i18n provides internationalization support for the packlist service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationSegments indicates invalid trip segments.
	ErrKeyValidationSegments = "error.validation.segments"
	// ErrKeyValidationBag indicates an unknown bag value.
	ErrKeyValidationBag = "error.validation.bag"
	// ErrKeyValidationItemKey indicates an incomplete item identity.
	ErrKeyValidationItemKey = "error.validation.item_key"
	// ErrKeyWeatherUnavailable indicates the weather lookup failed.
	ErrKeyWeatherUnavailable = "error.weather_unavailable"
	// ErrKeyLocationNotFound indicates geocoding found no match.
	ErrKeyLocationNotFound = "error.location_not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyPacklistGenerated indicates successful packing list generation.
	SuccessKeyPacklistGenerated = "success.packlist_generated"
)
