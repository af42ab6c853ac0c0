package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitTrend(t *testing.T) {
	tests := []struct {
		name              string
		values            []float64
		expectedSlope     float64
		expectedIntercept float64
		expectedErr       error
	}{
		{
			name:              "Série perfeitamente linear - recupera os coeficientes exatos",
			values:            []float64{7, 10, 13, 16, 19},
			expectedSlope:     3,
			expectedIntercept: 7,
		},
		{
			name:              "Série constante - inclinação zero",
			values:            []float64{50, 50, 50, 50},
			expectedSlope:     0,
			expectedIntercept: 50,
		},
		{
			name:              "Série decrescente - inclinação negativa",
			values:            []float64{100, 80, 60},
			expectedSlope:     -20,
			expectedIntercept: 100,
		},
		{
			name:        "Um único ponto - série degenerada",
			values:      []float64{42},
			expectedErr: ErrDegenerateSeries,
		},
		{
			name:        "Série vazia - série degenerada",
			values:      []float64{},
			expectedErr: ErrDegenerateSeries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, err := FitTrend(tt.values)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedSlope, trend.Slope, 1e-9)
			assert.InDelta(t, tt.expectedIntercept, trend.Intercept, 1e-9)
		})
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "Segunda metade dobra a primeira - crescimento de 100%",
			values:   []float64{50, 100},
			expected: 100,
		},
		{
			name:     "Tamanho ímpar - primeira metade leva o elemento extra",
			values:   []float64{10, 10, 10, 30}, // metades: [10 10] e [10 30]
			expected: 100,
		},
		{
			name:     "Queda nas vendas - taxa negativa",
			values:   []float64{100, 100, 50, 50},
			expected: -50,
		},
		{
			name:     "Primeira metade zerada - devolve 0 em vez de dividir por zero",
			values:   []float64{0, 0, 100, 100},
			expected: 0,
		},
		{
			name:     "Menos de dois pontos - devolve 0",
			values:   []float64{10},
			expected: 0,
		},
		{
			name:     "Série vazia - devolve 0",
			values:   nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GrowthRate(tt.values), 1e-9)
		})
	}
}

func TestGrowthRateOddSplit(t *testing.T) {
	// Com 5 pontos a primeira metade tem 3 elementos e a segunda 2
	values := []float64{10, 10, 10, 15, 15}

	// (30 - 30) / 30 * 100 = 0
	assert.InDelta(t, 0.0, GrowthRate(values), 1e-9)
}
