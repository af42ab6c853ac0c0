package analyzing

import (
	"sort"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// ProductPerformance acumula vendas, quantidades e série de tendência por
// produto, num único fold sobre os itens de todos os pedidos.
func ProductPerformance(orders []*domain.OrderRecord) map[string]*domain.PerformanceStats {
	stats := make(map[string]*domain.PerformanceStats)

	for _, order := range orders {
		if order == nil {
			continue
		}

		for _, item := range order.LineItems {
			if item == nil {
				continue
			}

			entry, ok := stats[item.ProductID]
			if !ok {
				entry = &domain.PerformanceStats{Name: item.ProductName}
				stats[item.ProductID] = entry
			}

			sales := item.UnitPrice * float64(item.Quantity)
			entry.TotalSales += sales
			entry.QuantitySold += item.Quantity
			entry.SalesTrend = append(entry.SalesTrend, &domain.TrendPoint{
				Date:  order.CreatedAt,
				Sales: sales,
			})
		}
	}

	for _, entry := range stats {
		finalizeStats(entry)
	}

	return stats
}

// CategoryPerformance é a variante por categoria; além das métricas comuns,
// conta quantos produtos distintos a categoria vendeu.
func CategoryPerformance(orders []*domain.OrderRecord) map[string]*domain.PerformanceStats {
	stats := make(map[string]*domain.PerformanceStats)
	productsByCategory := make(map[string]map[string]struct{})

	for _, order := range orders {
		if order == nil {
			continue
		}

		for _, item := range order.LineItems {
			if item == nil {
				continue
			}

			entry, ok := stats[item.CategoryID]
			if !ok {
				entry = &domain.PerformanceStats{Name: item.CategoryName}
				stats[item.CategoryID] = entry
				productsByCategory[item.CategoryID] = make(map[string]struct{})
			}

			sales := item.UnitPrice * float64(item.Quantity)
			entry.TotalSales += sales
			entry.QuantitySold += item.Quantity
			entry.SalesTrend = append(entry.SalesTrend, &domain.TrendPoint{
				Date:  order.CreatedAt,
				Sales: sales,
			})

			productsByCategory[item.CategoryID][item.ProductID] = struct{}{}
		}
	}

	for categoryID, entry := range stats {
		entry.ProductCount = len(productsByCategory[categoryID])
		finalizeStats(entry)
	}

	return stats
}

// finalizeStats calcula as métricas derivadas de um acumulador: preço
// médio (0 quando nada foi vendido, nunca divisão por zero), ordenação
// cronológica da tendência e taxa de crescimento entre as metades.
func finalizeStats(entry *domain.PerformanceStats) {
	if entry.QuantitySold > 0 {
		entry.AveragePrice = entry.TotalSales / float64(entry.QuantitySold)
	}

	sort.SliceStable(entry.SalesTrend, func(i, j int) bool {
		return entry.SalesTrend[i].Date.Before(entry.SalesTrend[j].Date)
	})

	values := make([]float64, 0, len(entry.SalesTrend))
	for _, point := range entry.SalesTrend {
		values = append(values, point.Sales)
	}

	entry.GrowthRate = GrowthRate(values)
}
