package analyzing

import (
	"sort"
	"time"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// AggregateDailySales soma o valor total dos pedidos por dia de criação.
// Pedidos sem data válida são ignorados.
func AggregateDailySales(orders []*domain.OrderRecord) domain.DailySeries {
	series := make(domain.DailySeries)

	for _, order := range orders {
		if order == nil || order.CreatedAt.IsZero() {
			continue
		}

		date := order.CreatedAt.Format(time.DateOnly)
		series[date] += order.TotalPrice
	}

	return series
}

// sortedDates devolve as datas da série em ordem cronológica. Como as
// chaves estão no formato YYYY-MM-DD, a ordem lexicográfica basta.
func sortedDates(series domain.DailySeries) []string {
	dates := make([]string, 0, len(series))
	for date := range series {
		dates = append(dates, date)
	}

	sort.Strings(dates)
	return dates
}
