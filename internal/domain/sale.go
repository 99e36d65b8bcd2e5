package domain

// SaleRecord is one line of the in-game sales history, keyed by its order number
type SaleRecord struct {
	Order    int    `json:"order"`
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Kamas    int    `json:"kamas"`
	SaleType string `json:"saleType"`
	SaleDate string `json:"saleDate"`
}

// SaleDateLayout is the DD/MM/YYYY format of SaleRecord.SaleDate
const SaleDateLayout = "02/01/2006"

// ItemSales aggregates every sale of one item name
type ItemSales struct {
	ItemName string `json:"itemName"`
	Sales    int    `json:"sales"`
	Kamas    int    `json:"kamas"`
}

// DailyKamas is the kamas earned on one calendar day (YYYY-MM-DD)
type DailyKamas struct {
	Date  string `json:"date"`
	Kamas int    `json:"kamas"`
}

// SalesSummary is the analysis of a profile's sales history
type SalesSummary struct {
	TotalKamas        int          `json:"totalKamas"`
	TotalItemsSold    int          `json:"totalItemsSold"`
	MostExpensiveSale *SaleRecord  `json:"mostExpensiveSale,omitempty"`
	MostFrequentItem  *ItemSales   `json:"mostFrequentItem,omitempty"`
	TopProfitable     []ItemSales  `json:"topProfitableItems"`
	Daily             []DailyKamas `json:"daily"`
}
