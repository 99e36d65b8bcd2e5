package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item database errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgSetNotFound       = "set not found"
	ErrMsgResolutionFailed  = "item resolution failed"
	ErrMsgUpstreamStatusFmt = "item database responded with status %d"

	// Wishlist errors
	ErrMsgNotInWishlist = "item is not in the crafting list"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"
	ErrMsgInvalidProfile  = "invalid profile name"

	// Sales errors
	ErrMsgExtractorUnavailable = "no sales extractor configured"
	ErrMsgExtractionFailed     = "sales extraction failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// PlaceholderIngredientNameFmt names an ingredient whose details failed to resolve
const PlaceholderIngredientNameFmt = "unknown ingredient (%d)"

// PlaceholderItemNameFmt names a set member whose details failed to resolve
const PlaceholderItemNameFmt = "unknown item (%d)"

// Common domain errors
// Wrap these errors with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	// Item database errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrSetNotFound      = errors.New(ErrMsgSetNotFound)
	ErrResolutionFailed = errors.New(ErrMsgResolutionFailed)

	// Wishlist errors
	ErrNotInWishlist = errors.New(ErrMsgNotInWishlist)

	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrInvalidProfile  = errors.New(ErrMsgInvalidProfile)

	// Sales errors
	ErrExtractorUnavailable = errors.New(ErrMsgExtractorUnavailable)
	ErrExtractionFailed     = errors.New(ErrMsgExtractionFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
