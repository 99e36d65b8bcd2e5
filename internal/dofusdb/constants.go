package dofusdb

import "time"

// ==================== API ====================

// Defaults for the public dofusdu.de API
const (
	DefaultBaseURL  = "https://api.dofusdu.de"
	DefaultGame     = "dofus3"
	DefaultLanguage = "fr"
)

// Item categories, in the order GetItem tries them
const (
	CategoryEquipment   = "equipment"
	CategoryConsumables = "consumables"
	CategoryResources   = "resources"
	CategoryMounts      = "mounts"
	CategorySets        = "sets"
)

// itemFields is the field selection sent with full item lookups
const itemFields = "recipe,effects,description,price,drops,conditions,type,level,name,ankama_id,image_urls,family"

// UnknownTypeName is used when an item has neither a type nor a family
const UnknownTypeName = "Unknown"

// ==================== Client Defaults ====================

const (
	DefaultTimeout           = 10 * time.Second
	DefaultRequestsPerSecond = 10.0
	DefaultBurst             = 10
	DefaultCacheSize         = 2000
	DefaultCacheTTL          = 30 * time.Minute
	DefaultMaxConcurrency    = 8
)

// ==================== Error Messages ====================

const (
	ErrMsgCreateRequestFailed = "failed to create request: %w"
	ErrMsgRateLimiterFailed   = "rate limiter error: %w"
	ErrMsgRequestFailedFmt    = "request to %s failed: %v: %w"
	ErrMsgDecodeFailedFmt     = "failed to decode %s: %v: %w"
	ErrMsgItemLookupFmt       = "item %d: %w"
	ErrMsgSetLookupFmt        = "set %d: %w"
	ErrMsgSearchFailedFmt     = "search %q failed in every category: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCategoryMiss        = "Item not found in category, trying next"
	LogMsgCategoryError       = "Item lookup failed in category, trying next"
	LogMsgIngredientDegraded  = "Failed to fetch ingredient, using placeholder"
	LogMsgSetItemDegraded     = "Failed to fetch set item, using placeholder"
	LogMsgSearchCategoryError = "Search failed for category, ignoring"
	LogMsgCacheHit            = "Item served from cache"
)
