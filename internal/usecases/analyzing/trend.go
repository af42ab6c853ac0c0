package analyzing

import (
	"errors"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// ErrDegenerateSeries indica que a série não tem pontos suficientes para o
// ajuste de mínimos quadrados. As funções públicas tratam esse erro
// internamente substituindo pelo fallback documentado.
var ErrDegenerateSeries = errors.New("série degenerada: são necessários ao menos 2 pontos")

// FitTrend ajusta uma reta por mínimos quadrados ordinários sobre os
// índices 0..n-1 da série ordenada.
func FitTrend(values []float64) (domain.TrendLine, error) {
	n := len(values)
	if n <= 1 {
		return domain.TrendLine{}, ErrDegenerateSeries
	}

	xMean := float64(n-1) / 2
	yMean := 0.0
	for _, v := range values {
		yMean += v
	}
	yMean /= float64(n)

	numerator := 0.0
	denominator := 0.0
	for i, v := range values {
		dx := float64(i) - xMean
		numerator += dx * (v - yMean)
		denominator += dx * dx
	}

	slope := numerator / denominator
	return domain.TrendLine{
		Slope:     slope,
		Intercept: yMean - slope*xMean,
	}, nil
}

// splitHalves divide a série em duas metades cronológicas. Quando n é
// ímpar, a primeira metade leva o elemento extra.
func splitHalves(values []float64) (first, second []float64) {
	mid := (len(values) + 1) / 2
	return values[:mid], values[mid:]
}

// GrowthRate compara as somas das duas metades da série e devolve a
// variação percentual. Devolve 0 quando há menos de 2 pontos ou quando a
// primeira metade soma exatamente 0 (guarda explícita de divisão por zero).
func GrowthRate(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	first, second := splitHalves(values)

	firstSum := 0.0
	for _, v := range first {
		firstSum += v
	}

	if firstSum == 0 {
		return 0
	}

	secondSum := 0.0
	for _, v := range second {
		secondSum += v
	}

	return (secondSum - firstSum) / firstSum * 100
}
