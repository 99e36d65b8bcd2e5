package sales

// Analysis window and ranking sizes
const (
	DailyWindowDays = 30
	TopItemsLimit   = 5
	DailyKeyLayout  = "2006-01-02"
)

// ==================== Error Messages ====================

const (
	ErrMsgExtractFailedFmt = "%w: image %d: %w"
	ErrMsgLoadSalesFailed  = "failed to load sales: %w"
	ErrMsgSaveSalesFailed  = "failed to save sales: %w"

	ErrMsgExtractorRunFmt    = "extractor %s failed: %w: %s"
	ErrMsgExtractorOutputFmt = "extractor returned invalid sales: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSalesImported   = "Sales imported"
	LogMsgSaleRemoved     = "Sale removed"
	LogMsgSalesCleared    = "Sales cleared"
	LogMsgExtractFailed   = "Sales extraction failed"
	LogMsgInvalidSaleDate = "Ignoring sale with unparseable date"
	LogMsgExtractorRan    = "Sales extractor finished"
)
