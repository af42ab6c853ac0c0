package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

func statsEntry(name string, totalSales float64, quantity int, growthRate float64) *domain.PerformanceStats {
	return &domain.PerformanceStats{
		Name:         name,
		TotalSales:   totalSales,
		QuantitySold: quantity,
		GrowthRate:   growthRate,
	}
}

func TestTopProducts(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Produto A", 1000, 10, 50),
		"p2": statsEntry("Produto B", 900, 9, 0),
		"p3": statsEntry("Produto C", 800, 8, -10),
		"p4": statsEntry("Produto D", 700, 7, 0),
		"p5": statsEntry("Produto E", 600, 6, 0),
		"p6": statsEntry("Produto F", 500, 5, 0),
	}

	top := TopProducts(stats)

	// Limitado aos 5 maiores por receita, em ordem decrescente
	assert.Len(t, top, 5)
	assert.Equal(t, "p1", top[0].ID)
	assert.Equal(t, "p5", top[4].ID)

	// Projeção deriva da taxa de crescimento: 1000 * 1.5
	assert.InDelta(t, 1500.0, top[0].PredictedSales, 1e-9)

	// Queda de 10%: 800 * 0.9
	assert.InDelta(t, 720.0, top[2].PredictedSales, 1e-9)
}

func TestTopProductsEmpty(t *testing.T) {
	assert.Empty(t, TopProducts(map[string]*domain.PerformanceStats{}))
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		entry    *domain.PerformanceStats
		expected float64
	}{
		{
			name:     "Composição dos pesos 0.4, 0.3 e 0.3",
			entry:    &domain.PerformanceStats{QuantitySold: 10, GrowthRate: 20, SalesTrend: make([]*domain.TrendPoint, 5)},
			expected: 10*0.4 + 20*0.3 + 5*0.3, // 11.5
		},
		{
			name:     "Crescimento negativo entra em módulo",
			entry:    &domain.PerformanceStats{QuantitySold: 0, GrowthRate: -50},
			expected: 15,
		},
		{
			name:     "Pontuação satura em 100",
			entry:    &domain.PerformanceStats{QuantitySold: 1000, GrowthRate: 500},
			expected: 100,
		},
		{
			name:     "Acumulador vazio pontua 0",
			entry:    &domain.PerformanceStats{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, confidenceScore(tt.entry), 1e-9)
		})
	}
}

func TestRecommendedProducts(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Explosivo", 1000, 10, 35),
		"p2": statsEntry("Saudável", 900, 9, 15),
		"p3": statsEntry("Morno", 800, 8, 5),
		"p4": statsEntry("Quarto", 700, 7, 2),
		"p5": statsEntry("Em queda", 600, 6, -20),
		"p6": statsEntry("Estagnado", 500, 5, 0),
	}

	recommended := RecommendedProducts(stats)

	// Só crescimento positivo, limitado a 3, ordenado pela taxa
	assert.Len(t, recommended, 3)
	assert.Equal(t, "p1", recommended[0].ID)
	assert.Equal(t, "p2", recommended[1].ID)
	assert.Equal(t, "p3", recommended[2].ID)

	assert.Equal(t, "Increase inventory and marketing budget", recommended[0].SuggestedAction)
	assert.Equal(t, "Maintain current strategy", recommended[1].SuggestedAction)
	assert.Equal(t, "Review pricing and marketing strategy", recommended[2].SuggestedAction)
}

func TestRecommendedProductsNoneGrowing(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Em queda", 1000, 10, -5),
		"p2": statsEntry("Estagnado", 900, 9, 0),
	}

	assert.Empty(t, RecommendedProducts(stats))
}

func TestCampaignSuggestions(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Grande", 50000, 100, 30), // 10% = 5000, limitado a 1000
		"p2": statsEntry("Pequeno", 200, 2, 25),    // 10% = 20, elevado a 100
		"p3": statsEntry("Médio", 5000, 50, 12),    // 10% = 500, dentro da faixa
	}

	recommended := RecommendedProducts(stats)
	suggestions := CampaignSuggestions(recommended, stats)

	assert.Len(t, suggestions, 3)

	budgets := make(map[string]float64)
	for _, s := range suggestions {
		budgets[s.ProductID] = s.SuggestedCampaign.Budget

		assert.Equal(t, "Facebook", s.SuggestedCampaign.Type)
		assert.Equal(t, "2 weeks", s.SuggestedCampaign.Duration)
		assert.Equal(t, "Previous buyers and similar interests", s.SuggestedCampaign.TargetAudience)
		assert.Equal(t, fmt.Sprintf("Highlight %s's growing popularity and positive trends", s.ProductName), s.SuggestedCampaign.KeyMessage)
	}

	assert.InDelta(t, 1000.0, budgets["p1"], 1e-9)
	assert.InDelta(t, 100.0, budgets["p2"], 1e-9)
	assert.InDelta(t, 500.0, budgets["p3"], 1e-9)
}

func TestBudgetAllocation(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Líder", 750, 10, 30),
		"p2": statsEntry("Coadjuvante", 250, 5, 5),
	}

	allocation := BudgetAllocation(stats)

	assert.Len(t, allocation, 2)

	assert.InDelta(t, 75.0, allocation["p1"].SuggestedBudget, 1e-9)
	assert.Equal(t, "High", allocation["p1"].Priority)

	assert.InDelta(t, 25.0, allocation["p2"].SuggestedBudget, 1e-9)
	assert.Equal(t, "Medium", allocation["p2"].Priority)
}

func TestBudgetAllocationZeroTotal(t *testing.T) {
	stats := map[string]*domain.PerformanceStats{
		"p1": statsEntry("Sem vendas", 0, 0, 0),
	}

	// Receita total zerada devolve mapa vazio em vez de dividir por zero
	assert.Empty(t, BudgetAllocation(stats))
}
