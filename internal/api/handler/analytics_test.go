package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// fakeAnalyzer registra o período solicitado e devolve o relatório fixo
type fakeAnalyzer struct {
	lastTimeRange domain.TimeRange
	report        *domain.AdvancedAnalyticsResponse
	err           error
}

func (f *fakeAnalyzer) AdvancedAnalytics(timeRange domain.TimeRange) (*domain.AdvancedAnalyticsResponse, error) {
	f.lastTimeRange = timeRange
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func analyticsReport() *domain.AdvancedAnalyticsResponse {
	return &domain.AdvancedAnalyticsResponse{
		SalesAnalysis: &domain.SalesAnalysis{
			DailySales:        domain.DailySeries{"2024-03-01": 100},
			MovingAverages:    domain.DailySeries{},
			TotalSales:        100,
			AverageOrderValue: 100,
		},
		ProductPerformance: map[string]*domain.PerformanceStats{},
		CategoryAnalysis:   map[string]*domain.PerformanceStats{},
		Predictions: &domain.Predictions{
			NextMonthSales:  []*domain.ForecastPoint{{Date: "2024-03-02", PredictedSales: 90, Confidence: 70}},
			TopProducts:     []*domain.TopProductPrediction{},
			PredictedGrowth: 5,
		},
		MarketingInsights: &domain.MarketingInsights{},
		TimeRange:         domain.TimeRangeMonth,
		GeneratedAt:       time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetAdvancedAnalytics(t *testing.T) {
	tests := []struct {
		name              string
		query             string
		expectedTimeRange domain.TimeRange
	}{
		{"Período explícito", "?timeRange=week", domain.TimeRangeWeek},
		{"Sem período cai no mês", "", domain.TimeRangeMonth},
		{"Período inválido cai no mês", "?timeRange=decade", domain.TimeRangeMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &fakeAnalyzer{report: analyticsReport()}
			handler := GetAdvancedAnalytics(analyzer)

			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/advanced"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedTimeRange, analyzer.lastTimeRange)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body domain.AdvancedAnalyticsResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.InDelta(t, 100.0, body.SalesAnalysis.TotalSales, 1e-9)
		})
	}
}

func TestGetAdvancedAnalyticsServiceError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("falha no banco")}
	handler := GetAdvancedAnalytics(analyzer)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/advanced", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "ANL_001", apiErr["code"])
}

func TestGetProductPredictions(t *testing.T) {
	analyzer := &fakeAnalyzer{report: analyticsReport()}
	handler := GetProductPredictions(analyzer)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/product-predictions?timeRange=year", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.TimeRangeYear, analyzer.lastTimeRange)

	var body ProductPredictionsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Predictions.NextMonthSales, 1)
	assert.InDelta(t, 5.0, body.Predictions.PredictedGrowth, 1e-9)
	assert.NotNil(t, body.MarketingInsights)
}

func TestGetSalesAnalysis(t *testing.T) {
	analyzer := &fakeAnalyzer{report: analyticsReport()}
	handler := GetSalesAnalysis(analyzer)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/sales-analysis", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body SalesAnalysisResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 100.0, body.SalesAnalysis.TotalSales, 1e-9)
	assert.InDelta(t, 100.0, body.SalesAnalysis.AverageOrderValue, 1e-9)
	assert.NotNil(t, body.CategoryAnalysis)
}
