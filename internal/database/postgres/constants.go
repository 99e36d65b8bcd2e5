package postgres

// Error Messages - Profile Store
const (
	ErrMsgFailedToLoadPlan      = "failed to load crafting plan"
	ErrMsgFailedToSavePlan      = "failed to save crafting plan"
	ErrMsgFailedToLoadSales     = "failed to load sales"
	ErrMsgFailedToSaveSales     = "failed to save sales"
	ErrMsgFailedToCreateProfile = "failed to create profile"
	ErrMsgFailedToListProfiles  = "failed to list profiles"
	ErrMsgFailedToDeleteProfile = "failed to delete profile"
	ErrMsgFailedToEncodeSection = "failed to encode %s"
	ErrMsgFailedToDecodeSection = "failed to decode %s"
)

// Column names used in error context
const (
	ColumnCraftingList     = "crafting_list"
	ColumnOwnedIngredients = "owned_ingredients"
	ColumnSales            = "sales"
)
