package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/lojaviva/commerce-analytics-api/internal/config"
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// fakeAnalyzer implementa analyzing.Analyzer para os testes do agendador
type fakeAnalyzer struct {
	calls  int
	report *domain.AdvancedAnalyticsResponse
	err    error
}

func (f *fakeAnalyzer) AdvancedAnalytics(timeRange domain.TimeRange) (*domain.AdvancedAnalyticsResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func digestConfig(enabled bool) *config.Config {
	return &config.Config{
		AnalyticsDigest: config.AnalyticsDigest{
			CronSchedule: "0 6 * * *",
			TimeRange:    "month",
			Enabled:      enabled,
		},
	}
}

func sampleReport() *domain.AdvancedAnalyticsResponse {
	return &domain.AdvancedAnalyticsResponse{
		SalesAnalysis: &domain.SalesAnalysis{
			TotalSales:        1500,
			AverageOrderValue: 150,
		},
		Predictions: &domain.Predictions{
			NextMonthSales: []*domain.ForecastPoint{
				{Date: "2024-04-01", PredictedSales: 120, Confidence: 70},
				{Date: "2024-04-02", PredictedSales: 130, Confidence: 68},
			},
			TopProducts: []*domain.TopProductPrediction{
				{ID: "p1", Name: "Fone Bluetooth", PredictedSales: 500, Confidence: 80},
			},
			PredictedGrowth: 12.5,
		},
		TimeRange:   domain.TimeRangeMonth,
		GeneratedAt: time.Now(),
	}
}

func TestRunDigest(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	service := NewAnalyticsDigestService(analyzer, digestConfig(true))

	err := service.RunDigest()

	assert.NoError(t, err)
	assert.Equal(t, 1, analyzer.calls)

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.NotEmpty(t, status["last_run_id"])
	assert.NotZero(t, status["last_run_started_at"])
	assert.NotZero(t, status["last_run_completed_at"])
}

func TestDigestFields(t *testing.T) {
	fields := digestFields(sampleReport())

	assert.Equal(t, logrus.Fields{
		"total_sales":                1500.0,
		"average_order_value":        150.0,
		"predicted_growth":           12.5,
		"top_product":                "Fone Bluetooth",
		"projected_next_month_sales": 250.0,
	}, fields)
}

func TestDigestFieldsWithoutPredictions(t *testing.T) {
	report := sampleReport()
	report.Predictions.TopProducts = nil
	report.Predictions.NextMonthSales = nil

	fields := digestFields(report)

	assert.Equal(t, logrus.Fields{
		"total_sales":         1500.0,
		"average_order_value": 150.0,
		"predicted_growth":    12.5,
	}, fields)
}

func TestRunDigestPropagatesAnalyzerError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("banco indisponível")}
	service := NewAnalyticsDigestService(analyzer, digestConfig(true))

	err := service.RunDigest()

	assert.Error(t, err)
	assert.Equal(t, 1, analyzer.calls)

	// A execução é liberada mesmo após erro
	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
}

func TestRunDigestSkipsConcurrentRun(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	service := NewAnalyticsDigestService(analyzer, digestConfig(true))

	// Simula uma execução em andamento
	service.digestMutex.Lock()
	service.digestRunning = true
	service.digestMutex.Unlock()

	err := service.RunDigest()

	assert.NoError(t, err)
	assert.Equal(t, 0, analyzer.calls)
}

func TestStartDisabledByConfig(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	service := NewAnalyticsDigestService(analyzer, digestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, analyzer.calls)
}

func TestGetStatusExposesConfig(t *testing.T) {
	service := NewAnalyticsDigestService(&fakeAnalyzer{}, digestConfig(true))

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 6 * * *", status["cron"])
	assert.Equal(t, domain.TimeRangeMonth, status["time_range"])
}
