package analyzing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lojaviva/commerce-analytics-api/infrastructure/repository/mocks"
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

func TestServiceAdvancedAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	service := &Service{
		orderRepo: mockOrderRepo,
		window:    DefaultMovingAverageWindow,
		now:       func() time.Time { return now },
	}

	orders := ordersFixture() // 2 pedidos: 100 no dia 1 e 200 no dia 2

	mockOrderRepo.EXPECT().
		ListPaidSince(now.AddDate(0, -1, 0)).
		Return(orders, nil)

	result, err := service.AdvancedAnalytics(domain.TimeRangeMonth)

	assert.NoError(t, err)
	assert.NotNil(t, result)

	// Bloco de vendas
	assert.InDelta(t, 300.0, result.SalesAnalysis.TotalSales, 1e-9)
	assert.InDelta(t, 150.0, result.SalesAnalysis.AverageOrderValue, 1e-9)
	assert.Equal(t, domain.DailySeries{
		"2024-03-01": 100,
		"2024-03-02": 200,
	}, result.SalesAnalysis.DailySales)

	// Desempenho por produto e por categoria
	assert.Len(t, result.ProductPerformance, 2)
	assert.Len(t, result.CategoryAnalysis, 2)

	// Previsões: sempre 30 pontos e os produtos do período
	assert.Len(t, result.Predictions.NextMonthSales, ForecastHorizonDays)
	assert.Len(t, result.Predictions.TopProducts, 2)

	// Crescimento geral: pedidos de 100 e 200 -> (200-100)/100*100
	assert.InDelta(t, 100.0, result.Predictions.PredictedGrowth, 1e-9)

	// Insights de marketing presentes e consistentes
	assert.NotNil(t, result.MarketingInsights)
	assert.Len(t, result.MarketingInsights.BudgetAllocation, 2)

	assert.Equal(t, domain.TimeRangeMonth, result.TimeRange)
	assert.Equal(t, now, result.GeneratedAt)
}

func TestServiceAdvancedAnalyticsTimeRanges(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		timeRange     domain.TimeRange
		expectedSince time.Time
	}{
		{"Semana", domain.TimeRangeWeek, now.AddDate(0, 0, -7)},
		{"Mês", domain.TimeRangeMonth, now.AddDate(0, -1, 0)},
		{"Ano", domain.TimeRangeYear, now.AddDate(-1, 0, 0)},
		{"Desconhecido cai no mês", domain.TimeRange("decade"), now.AddDate(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
			mockOrderRepo.EXPECT().
				ListPaidSince(tt.expectedSince).
				Return(nil, nil)

			service := &Service{
				orderRepo: mockOrderRepo,
				window:    DefaultMovingAverageWindow,
				now:       func() time.Time { return now },
			}

			result, err := service.AdvancedAnalytics(tt.timeRange)

			assert.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestServiceAdvancedAnalyticsEmptyPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockOrderRepo.EXPECT().
		ListPaidSince(gomock.Any()).
		Return([]*domain.OrderRecord{}, nil)

	service := &Service{
		orderRepo: mockOrderRepo,
		window:    DefaultMovingAverageWindow,
		now:       time.Now,
	}

	result, err := service.AdvancedAnalytics(domain.TimeRangeWeek)

	assert.NoError(t, err)

	// Período vazio degrada para zeros, nunca para NaN ou pânico
	assert.Equal(t, 0.0, result.SalesAnalysis.TotalSales)
	assert.Equal(t, 0.0, result.SalesAnalysis.AverageOrderValue)
	assert.Empty(t, result.ProductPerformance)
	assert.Empty(t, result.MarketingInsights.RecommendedProducts)
	assert.Len(t, result.Predictions.NextMonthSales, ForecastHorizonDays)

	for _, point := range result.Predictions.NextMonthSales {
		assert.Equal(t, 0.0, point.PredictedSales)
	}
}

func TestServiceAdvancedAnalyticsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockOrderRepo.EXPECT().
		ListPaidSince(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	service := &Service{
		orderRepo: mockOrderRepo,
		window:    DefaultMovingAverageWindow,
		now:       time.Now,
	}

	result, err := service.AdvancedAnalytics(domain.TimeRangeMonth)

	assert.Error(t, err)
	assert.Nil(t, result)
}
