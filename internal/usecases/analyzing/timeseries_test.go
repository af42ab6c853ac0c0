package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

func TestAggregateDailySales(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		orders   []*domain.OrderRecord
		expected domain.DailySeries
	}{
		{
			name: "Pedidos no mesmo dia são somados",
			orders: []*domain.OrderRecord{
				{ID: "o1", CreatedAt: day1, TotalPrice: 100},
				{ID: "o2", CreatedAt: day1.Add(2 * time.Hour), TotalPrice: 50},
				{ID: "o3", CreatedAt: day2, TotalPrice: 200},
			},
			expected: domain.DailySeries{
				"2024-01-01": 150,
				"2024-01-02": 200,
			},
		},
		{
			name: "Pedidos sem data válida são ignorados",
			orders: []*domain.OrderRecord{
				{ID: "o1", CreatedAt: day1, TotalPrice: 100},
				{ID: "o2", TotalPrice: 999},
				nil,
			},
			expected: domain.DailySeries{
				"2024-01-01": 100,
			},
		},
		{
			name:     "Sem pedidos - série vazia",
			orders:   nil,
			expected: domain.DailySeries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AggregateDailySales(tt.orders))
		})
	}
}

func TestMovingAverage(t *testing.T) {
	series := domain.DailySeries{
		"2024-01-01": 10,
		"2024-01-02": 20,
		"2024-01-03": 30,
		"2024-01-04": 40,
	}

	tests := []struct {
		name     string
		series   domain.DailySeries
		window   int
		expected domain.DailySeries
	}{
		{
			name:   "Janela de 3 dias - só datas com histórico completo",
			series: series,
			window: 3,
			expected: domain.DailySeries{
				"2024-01-03": 20,
				"2024-01-04": 30,
			},
		},
		{
			name:     "Histórico menor que a janela - resultado vazio",
			series:   series,
			window:   7,
			expected: domain.DailySeries{},
		},
		{
			name:   "Janela inválida cai no padrão de 7 dias",
			series: series,
			window: 0,
			// 4 pontos < 7: nenhuma média é emitida
			expected: domain.DailySeries{},
		},
		{
			name:     "Série vazia",
			series:   domain.DailySeries{},
			window:   3,
			expected: domain.DailySeries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MovingAverage(tt.series, tt.window))
		})
	}
}

func TestSeasonality(t *testing.T) {
	// 2024-01-01 é segunda-feira (weekday 1); 2024-01-08 também
	series := domain.DailySeries{
		"2024-01-01": 100,
		"2024-01-08": 300,
		"2024-02-06": 50, // terça-feira (weekday 2), fevereiro (mês 1)
	}

	profile := Seasonality(series)

	// Médias brutas por dia da semana
	assert.InDelta(t, 200.0, profile.Weekly[1], 1e-9)
	assert.InDelta(t, 50.0, profile.Weekly[2], 1e-9)

	// Dias da semana sem observação ficam ausentes
	_, ok := profile.Weekly[0]
	assert.False(t, ok)

	// Médias por mês: janeiro = índice 0, fevereiro = índice 1
	assert.InDelta(t, 200.0, profile.Monthly[0], 1e-9)
	assert.InDelta(t, 50.0, profile.Monthly[1], 1e-9)
}

func TestSeasonalityEmptySeries(t *testing.T) {
	profile := Seasonality(domain.DailySeries{})

	assert.Empty(t, profile.Weekly)
	assert.Empty(t, profile.Monthly)
}
