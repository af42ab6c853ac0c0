package analyzing

import (
	"time"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// Seasonality calcula a média de vendas por dia da semana (0 = domingo) e
// por mês do ano (0 = janeiro). Os valores são médias brutas, não fatores
// normalizados pela média geral; buckets sem observação ficam ausentes e o
// consumidor deve tratá-los como fator neutro.
func Seasonality(series domain.DailySeries) domain.SeasonalProfile {
	weeklyTotals := make(map[int]float64)
	weeklyCounts := make(map[int]int)
	monthlyTotals := make(map[int]float64)
	monthlyCounts := make(map[int]int)

	for _, date := range sortedDates(series) {
		day, err := time.Parse(time.DateOnly, date)
		if err != nil {
			continue
		}

		weekday := int(day.Weekday())
		weeklyTotals[weekday] += series[date]
		weeklyCounts[weekday]++

		month := int(day.Month()) - 1
		monthlyTotals[month] += series[date]
		monthlyCounts[month]++
	}

	profile := domain.SeasonalProfile{
		Weekly:  make(map[int]float64, len(weeklyTotals)),
		Monthly: make(map[int]float64, len(monthlyTotals)),
	}

	for weekday, total := range weeklyTotals {
		profile.Weekly[weekday] = total / float64(weeklyCounts[weekday])
	}

	for month, total := range monthlyTotals {
		profile.Monthly[month] = total / float64(monthlyCounts[month])
	}

	return profile
}
