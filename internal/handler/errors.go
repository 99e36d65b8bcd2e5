package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"

	// Upload error messages
	ErrMsgInvalidUpload = "Expected a multipart form with one or more images"
	ErrMsgNoImages      = "No images uploaded"
	ErrMsgTooManyImages = "Too many images in one upload"
	ErrMsgImageTooLarge = "Image exceeds the upload limit"
)

// Success messages for API responses
const (
	MsgProfileCreated   = "Profile created"
	MsgProfileDeleted   = "Profile deleted"
	MsgQuantityUpdated  = "Quantity updated"
	MsgItemRemoved      = "Item removed"
	MsgCraftListCleared = "Crafting list cleared"
	MsgSaleRemoved      = "Sale removed"
	MsgSalesCleared     = "Sales history cleared"
	MsgCacheCleared     = "Item cache cleared"
)

// Action names used in logs
const (
	ActionListProfiles    = "List profiles"
	ActionCreateProfile   = "Create profile"
	ActionDeleteProfile   = "Delete profile"
	ActionGetWishlist     = "Get crafting list"
	ActionAddItem         = "Add item"
	ActionSetQuantity     = "Set quantity"
	ActionRemoveItem      = "Remove item"
	ActionClearWishlist   = "Clear crafting list"
	ActionSetOwned        = "Set owned"
	ActionGetOwned        = "Get owned"
	ActionGetIngredients  = "Get ingredients"
	ActionListSales       = "List sales"
	ActionImportSales     = "Import sales"
	ActionImportImages    = "Import sales screenshots"
	ActionRemoveSale      = "Remove sale"
	ActionClearSales      = "Clear sales"
	ActionSalesSummary    = "Sales summary"
	ActionSearchItems     = "Search items"
	ActionGetItem         = "Get item"
	ActionSearchSets      = "Search sets"
	ActionGetSet          = "Get set"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgReadinessFailed      = "Readiness check failed"
)

// Request limits
const (
	// MaxUploadBytes bounds a screenshot upload request
	MaxUploadBytes = 20 << 20
	// MaxImagesPerUpload bounds the number of screenshots in one request
	MaxImagesPerUpload = 20
	// MaxSearchQueryLength bounds item and set search terms
	MaxSearchQueryLength = 100
	// ImagesFormField is the multipart field holding screenshots
	ImagesFormField = "images"
)

// Path and query parameter names
const (
	ParamProfile      = "profile"
	ParamItemID       = "itemID"
	ParamIngredientID = "ingredientID"
	ParamOrder        = "order"
	ParamID           = "id"
	ParamQuantity     = "quantity"
	ParamCount        = "count"
	ParamView         = "view"
	ParamQuery        = "q"
)
