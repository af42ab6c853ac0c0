package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lojaviva/commerce-analytics-api/internal/domain"
	"github.com/lojaviva/commerce-analytics-api/internal/usecases/analyzing"
	"github.com/lojaviva/commerce-analytics-api/pkg/apiErrors"
	"github.com/lojaviva/commerce-analytics-api/pkg/log"
)

// GetAdvancedAnalytics retorna o relatório completo de análise de vendas,
// previsões e insights de marketing para o período solicitado.
func GetAdvancedAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeRange := domain.ParseTimeRange(r.URL.Query().Get("timeRange"))
		logger.WithField("time_range", timeRange).Info("analytics: generating advanced analytics report")

		result, err := service.AdvancedAnalytics(timeRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to generate advanced analytics")

			apiErrors.WriteError(w, apiErrors.ErrAnalyticsComputation, "Erro ao gerar análise avançada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ProductPredictionsResponse agrupa as previsões e os insights de marketing
// derivados delas.
type ProductPredictionsResponse struct {
	Predictions       *domain.Predictions       `json:"predictions"`
	MarketingInsights *domain.MarketingInsights `json:"marketingInsights"`
}

// SalesAnalysisResponse agrupa o resumo de vendas e a análise por categoria.
type SalesAnalysisResponse struct {
	SalesAnalysis    *domain.SalesAnalysis               `json:"salesAnalysis"`
	CategoryAnalysis map[string]*domain.PerformanceStats `json:"categoryAnalysis"`
}

// GetProductPredictions retorna o bloco de previsões do relatório avançado
// junto com os insights de marketing derivados delas.
func GetProductPredictions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeRange := domain.ParseTimeRange(r.URL.Query().Get("timeRange"))
		logger.WithField("time_range", timeRange).Info("analytics: generating product predictions")

		result, err := service.AdvancedAnalytics(timeRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to generate product predictions")

			apiErrors.WriteError(w, apiErrors.ErrAnalyticsComputation, "Erro ao gerar previsões de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := ProductPredictionsResponse{
			Predictions:       result.Predictions,
			MarketingInsights: result.MarketingInsights,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetSalesAnalysis retorna o resumo de vendas do período, com as séries de
// média móvel, fatores de sazonalidade e a análise por categoria.
func GetSalesAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeRange := domain.ParseTimeRange(r.URL.Query().Get("timeRange"))
		logger.WithField("time_range", timeRange).Info("analytics: generating sales analysis")

		result, err := service.AdvancedAnalytics(timeRange)
		if err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to generate sales analysis")

			apiErrors.WriteError(w, apiErrors.ErrAnalyticsComputation, "Erro ao gerar análise de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := SalesAnalysisResponse{
			SalesAnalysis:    result.SalesAnalysis,
			CategoryAnalysis: result.CategoryAnalysis,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"time_range": timeRange,
				"error":      err.Error(),
			}).Error("analytics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
