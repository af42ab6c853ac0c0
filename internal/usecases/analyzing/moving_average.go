package analyzing

import "github.com/lojaviva/commerce-analytics-api/internal/domain"

// DefaultMovingAverageWindow é a janela padrão de uma semana.
const DefaultMovingAverageWindow = 7

// MovingAverage calcula a média móvel da série com a janela informada.
// Apenas datas com histórico suficiente (indice >= janela-1) produzem
// entrada; o resultado tem max(0, n-janela+1) elementos.
func MovingAverage(series domain.DailySeries, window int) domain.DailySeries {
	if window < 1 {
		window = DefaultMovingAverageWindow
	}

	dates := sortedDates(series)
	averages := make(domain.DailySeries)

	for i := window - 1; i < len(dates); i++ {
		sum := 0.0
		for _, date := range dates[i-window+1 : i+1] {
			sum += series[date]
		}

		averages[dates[i]] = sum / float64(window)
	}

	return averages
}
