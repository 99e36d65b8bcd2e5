package crafting

import "golang.org/x/text/language"

// ==================== Aggregation ====================

// DefaultLanguage is the collation locale used to order ingredient names.
// It matches the language the item database is queried in.
var DefaultLanguage = language.French

// Ingredient view modes accepted by the ingredients query
const (
	ViewFlat    = "flat"
	ViewGrouped = "grouped"
)

// ==================== Input Defaults ====================

// Defaults applied when user-typed numbers cannot be parsed
const (
	DefaultQuantity = 1
	DefaultOwned    = 0
)

// ==================== Error Messages ====================

const (
	ErrMsgResolveItemFailedFmt = "failed to resolve item %d: %w"
	ErrMsgNotInWishlistFmt     = "item %d: %w"
	ErrMsgInvalidViewFmt       = "unknown ingredient view %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgAddItemCalled        = "AddItem called"
	LogMsgItemAdded            = "Item added to crafting list"
	LogMsgQuantityUpdated      = "Crafting quantity updated"
	LogMsgItemRemoved          = "Item removed from crafting list"
	LogMsgPlanCleared          = "Crafting list and owned ingredients cleared"
	LogMsgOwnedUpdated         = "Owned ingredient count updated"
	LogMsgLoadProfileFailed    = "Failed to load profile state, starting with an empty plan"
	LogMsgSaveProfileFailed    = "Failed to save profile state"
	LogMsgShuttingDown         = "Shutting down crafting service, waiting for pending saves..."
	LogMsgShutdownComplete     = "Crafting service shutdown complete"
	LogMsgShutdownForced       = "Crafting service shutdown forced by context cancellation"
	LogMsgResolveItemFailed    = "Failed to resolve item"
	LogMsgSessionLoaded        = "Crafting session loaded"
	LogMsgProfileDeleted       = "Profile deleted"
	LogMsgSaveSkippedNoProfile = "Profile no longer exists, save skipped"
	LogMsgSessionsEvicted      = "Idle crafting sessions evicted"
)

// ==================== Metric Operation Labels ====================

const (
	OpAdd         = "add"
	OpSetQuantity = "set_quantity"
	OpRemove      = "remove"
	OpClear       = "clear"
	OpSetOwned    = "set_owned"
)
