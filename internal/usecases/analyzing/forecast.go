package analyzing

import (
	"math"
	"time"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
	"github.com/lojaviva/commerce-analytics-api/pkg/utils"
)

// ForecastHorizonDays é o horizonte fixo de projeção.
const ForecastHorizonDays = 30

// historyCapDays limita o peso do histórico no cálculo de confiança.
const historyCapDays = 90

// ForecastDailySales projeta as vendas dos próximos 30 dias a partir da
// série diária: reta de tendência sobre a série ordenada, modulada pelos
// fatores sazonais semanais e mensais. Com menos de 2 pontos a projeção
// degenera para 0 em todos os horizontes (fallback documentado, não erro).
//
// Os fatores sazonais são médias brutas, não fatores normalizados; o
// comportamento foi preservado do cálculo original de propósito, mesmo
// tornando a projeção dimensionalmente inconsistente com a reta sozinha.
func ForecastDailySales(series domain.DailySeries) []*domain.ForecastPoint {
	dates := sortedDates(series)
	n := len(dates)

	values := make([]float64, 0, n)
	for _, date := range dates {
		values = append(values, series[date])
	}

	trend, err := FitTrend(values)
	degenerate := err != nil

	seasonal := Seasonality(series)

	// Âncora das datas projetadas: o dia seguinte à última observação.
	// Série vazia ancora em hoje para manter as 30 datas na resposta.
	lastDate := time.Now().UTC().Truncate(24 * time.Hour)
	if n > 0 {
		if parsed, err := time.Parse(time.DateOnly, dates[n-1]); err == nil {
			lastDate = parsed
		}
	}

	points := make([]*domain.ForecastPoint, 0, ForecastHorizonDays)

	for i := 1; i <= ForecastHorizonDays; i++ {
		forecastDate := lastDate.AddDate(0, 0, i)

		predicted := 0.0
		if !degenerate {
			trendValue := trend.Slope*float64(n+i) + trend.Intercept

			weeklyFactor, ok := seasonal.Weekly[int(forecastDate.Weekday())]
			if !ok {
				weeklyFactor = 1
			}

			monthlyFactor, ok := seasonal.Monthly[int(forecastDate.Month())-1]
			if !ok {
				monthlyFactor = 1
			}

			predicted = math.Max(0, trendValue*weeklyFactor*monthlyFactor)
		}

		points = append(points, &domain.ForecastPoint{
			Date:           forecastDate.Format(time.DateOnly),
			PredictedSales: utils.RoundWithTwoDecimalPlace(sanitize(predicted)),
			Confidence:     forecastConfidence(i, n),
		})
	}

	return points
}

// forecastConfidence combina o decaimento linear do horizonte (peso 0.7)
// com o volume de histórico disponível (peso 0.3, saturando em 90 dias).
func forecastConfidence(daysAhead, historyPoints int) int {
	timeDecay := math.Max(0, 1-float64(daysAhead)/float64(ForecastHorizonDays))
	dataConfidence := math.Min(1, float64(historyPoints)/float64(historyCapDays))

	return int(math.Round((timeDecay*0.7 + dataConfidence*0.3) * 100))
}

// sanitize zera valores não finitos antes de irem para a resposta; NaN e
// infinito nunca devem ser serializados.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
