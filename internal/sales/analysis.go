package sales

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// Analyze summarizes a sales history. Daily covers the DailyWindowDays days
// ending on now, oldest first; sales with an unparseable date are left out of
// Daily but still count toward the totals.
func Analyze(ctx context.Context, records []domain.SaleRecord, now time.Time) domain.SalesSummary {
	summary := domain.SalesSummary{
		TopProfitable: []domain.ItemSales{},
		Daily:         dailyWindow(now),
	}
	if len(records) == 0 {
		return summary
	}

	dayIndex := make(map[string]int, len(summary.Daily))
	for i, d := range summary.Daily {
		dayIndex[d.Date] = i
	}

	perItem := make(map[string]*domain.ItemSales)
	itemOrder := make([]string, 0)
	for i := range records {
		r := records[i]
		summary.TotalKamas += r.Kamas
		summary.TotalItemsSold += r.Quantity

		if summary.MostExpensiveSale == nil || r.Kamas > summary.MostExpensiveSale.Kamas {
			summary.MostExpensiveSale = &records[i]
		}

		agg, ok := perItem[r.ItemName]
		if !ok {
			agg = &domain.ItemSales{ItemName: r.ItemName}
			perItem[r.ItemName] = agg
			itemOrder = append(itemOrder, r.ItemName)
		}
		agg.Sales++
		agg.Kamas += r.Kamas

		day, err := time.ParseInLocation(domain.SaleDateLayout, strings.TrimSpace(r.SaleDate), now.Location())
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgInvalidSaleDate, "order", r.Order, "saleDate", r.SaleDate)
			continue
		}
		if i, ok := dayIndex[day.Format(DailyKeyLayout)]; ok {
			summary.Daily[i].Kamas += r.Kamas
		}
	}

	items := make([]domain.ItemSales, 0, len(itemOrder))
	for _, name := range itemOrder {
		items = append(items, *perItem[name])
	}

	// First seen wins ties, like a left-to-right scan
	for _, it := range items {
		if summary.MostFrequentItem == nil || it.Sales > summary.MostFrequentItem.Sales {
			summary.MostFrequentItem = &it
		}
	}

	slices.SortStableFunc(items, func(a, b domain.ItemSales) int {
		return b.Kamas - a.Kamas
	})
	if len(items) > TopItemsLimit {
		items = items[:TopItemsLimit]
	}
	summary.TopProfitable = items

	return summary
}

func dailyWindow(now time.Time) []domain.DailyKamas {
	days := make([]domain.DailyKamas, DailyWindowDays)
	for i := 0; i < DailyWindowDays; i++ {
		day := now.AddDate(0, 0, -(DailyWindowDays - 1 - i))
		days[i] = domain.DailyKamas{Date: day.Format(DailyKeyLayout)}
	}
	return days
}
