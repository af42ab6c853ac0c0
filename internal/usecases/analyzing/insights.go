package analyzing

import (
	"fmt"
	"math"
	"sort"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

const (
	topProductsLimit     = 5
	recommendedLimit     = 3
	campaignBudgetFloor  = 100
	campaignBudgetCeil   = 1000
	campaignBudgetFactor = 0.1
)

// rankedStats ordena os ids pelo critério informado, de forma estável para
// manter a saída determinística entre execuções.
func rankedStats(stats map[string]*domain.PerformanceStats, less func(a, b *domain.PerformanceStats) bool) []string {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return less(stats[ids[i]], stats[ids[j]])
	})

	return ids
}

// TopProducts devolve os 5 produtos com maior receita e a projeção de
// vendas derivada da taxa de crescimento. Projeções não finitas (taxas de
// crescimento arbitrárias podem estourar o float) são zeradas.
func TopProducts(stats map[string]*domain.PerformanceStats) []*domain.TopProductPrediction {
	ids := rankedStats(stats, func(a, b *domain.PerformanceStats) bool {
		return a.TotalSales > b.TotalSales
	})

	if len(ids) > topProductsLimit {
		ids = ids[:topProductsLimit]
	}

	top := make([]*domain.TopProductPrediction, 0, len(ids))
	for _, id := range ids {
		entry := stats[id]
		predicted := entry.TotalSales * (1 + entry.GrowthRate/100)

		top = append(top, &domain.TopProductPrediction{
			ID:             id,
			Name:           entry.Name,
			PredictedSales: sanitize(predicted),
			Confidence:     confidenceScore(entry),
		})
	}

	return top
}

// confidenceScore pondera quantidade vendida, intensidade do crescimento e
// volume de observações, limitado ao intervalo 0..100.
func confidenceScore(entry *domain.PerformanceStats) float64 {
	raw := float64(entry.QuantitySold)*0.4 +
		math.Abs(entry.GrowthRate)*0.3 +
		float64(len(entry.SalesTrend))*0.3

	return math.Min(100, math.Max(0, raw))
}

// RecommendedProducts devolve até 3 produtos com crescimento positivo,
// ordenados pela taxa, cada um com a ação sugerida por faixa.
func RecommendedProducts(stats map[string]*domain.PerformanceStats) []*domain.RecommendedProduct {
	growing := make(map[string]*domain.PerformanceStats)
	for id, entry := range stats {
		if entry.GrowthRate > 0 {
			growing[id] = entry
		}
	}

	ids := rankedStats(growing, func(a, b *domain.PerformanceStats) bool {
		return a.GrowthRate > b.GrowthRate
	})

	if len(ids) > recommendedLimit {
		ids = ids[:recommendedLimit]
	}

	recommended := make([]*domain.RecommendedProduct, 0, len(ids))
	for _, id := range ids {
		entry := growing[id]
		recommended = append(recommended, &domain.RecommendedProduct{
			ID:              id,
			Name:            entry.Name,
			GrowthRate:      entry.GrowthRate,
			SuggestedAction: suggestedAction(entry.GrowthRate),
		})
	}

	return recommended
}

func suggestedAction(growthRate float64) string {
	switch {
	case growthRate > 20:
		return "Increase inventory and marketing budget"
	case growthRate > 10:
		return "Maintain current strategy"
	default:
		return "Review pricing and marketing strategy"
	}
}

// CampaignSuggestions gera uma sugestão de campanha por produto
// recomendado, com orçamento proporcional à receita limitado a 100..1000.
func CampaignSuggestions(recommended []*domain.RecommendedProduct, stats map[string]*domain.PerformanceStats) []*domain.CampaignSuggestion {
	suggestions := make([]*domain.CampaignSuggestion, 0, len(recommended))

	for _, product := range recommended {
		entry, ok := stats[product.ID]
		if !ok {
			continue
		}

		budget := math.Min(campaignBudgetCeil, math.Max(campaignBudgetFloor, entry.TotalSales*campaignBudgetFactor))

		suggestions = append(suggestions, &domain.CampaignSuggestion{
			ProductID:   product.ID,
			ProductName: product.Name,
			SuggestedCampaign: domain.Campaign{
				Type:           "Facebook",
				Duration:       "2 weeks",
				Budget:         budget,
				TargetAudience: "Previous buyers and similar interests",
				KeyMessage:     fmt.Sprintf("Highlight %s's growing popularity and positive trends", product.Name),
			},
		})
	}

	return suggestions
}

// BudgetAllocation distribui o orçamento como fatia percentual da receita
// de cada produto. Receita total zerada devolve mapa vazio em vez de
// dividir por zero.
func BudgetAllocation(stats map[string]*domain.PerformanceStats) map[string]*domain.BudgetAllocation {
	allocation := make(map[string]*domain.BudgetAllocation)

	totalSales := 0.0
	for _, entry := range stats {
		totalSales += entry.TotalSales
	}

	if totalSales == 0 {
		return allocation
	}

	for id, entry := range stats {
		priority := "Medium"
		if entry.GrowthRate > 10 {
			priority = "High"
		}

		allocation[id] = &domain.BudgetAllocation{
			ProductName:     entry.Name,
			SuggestedBudget: entry.TotalSales / totalSales * 100,
			Priority:        priority,
		}
	}

	return allocation
}
