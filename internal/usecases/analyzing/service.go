package analyzing

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lojaviva/commerce-analytics-api/infrastructure/repository"
	"github.com/lojaviva/commerce-analytics-api/internal/config"
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
	"github.com/lojaviva/commerce-analytics-api/pkg/utils"
)

// Service orquestra o pipeline de analytics sobre os pedidos pagos do
// período. Cada chamada recomputa tudo a partir do conjunto de pedidos;
// nada é cacheado ou persistido.
type Service struct {
	orderRepo repository.OrderRepository
	window    int
	now       func() time.Time
}

func NewService(orderRepo repository.OrderRepository, cfg *config.Config) Analyzer {
	window := DefaultMovingAverageWindow
	if cfg != nil && cfg.Analytics.MovingAverageWindow > 0 {
		window = cfg.Analytics.MovingAverageWindow
	}

	return &Service{
		orderRepo: orderRepo,
		window:    window,
		now:       time.Now,
	}
}

func (s *Service) AdvancedAnalytics(timeRange domain.TimeRange) (*domain.AdvancedAnalyticsResponse, error) {
	now := s.now()
	startDate := timeRange.StartDate(now)

	orders, err := s.orderRepo.ListPaidSince(startDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"time_range": timeRange,
			"start_date": startDate.Format(time.DateOnly),
		}).Error("analytics: falha ao buscar pedidos do período")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"time_range": timeRange,
		"start_date": startDate.Format(time.DateOnly),
		"orders":     len(orders),
	}).Debug("analytics: pedidos carregados, iniciando pipeline")

	salesAnalysis := s.analyzeSales(orders)
	productPerformance := ProductPerformance(orders)
	categoryAnalysis := CategoryPerformance(orders)
	predictions := s.generatePredictions(orders, salesAnalysis.DailySales, productPerformance)
	marketingInsights := generateMarketingInsights(productPerformance)

	return &domain.AdvancedAnalyticsResponse{
		SalesAnalysis:      salesAnalysis,
		ProductPerformance: productPerformance,
		CategoryAnalysis:   categoryAnalysis,
		Predictions:        predictions,
		MarketingInsights:  marketingInsights,
		TimeRange:          timeRange,
		GeneratedAt:        now,
	}, nil
}

// analyzeSales monta o bloco de análise de vendas: série diária, médias
// móveis, sazonalidade e os totais do período.
func (s *Service) analyzeSales(orders []*domain.OrderRecord) *domain.SalesAnalysis {
	dailySales := AggregateDailySales(orders)

	totalSales := 0.0
	for _, value := range dailySales {
		totalSales += value
	}

	// Ticket médio protegido contra conjunto vazio de pedidos.
	averageOrderValue := 0.0
	if len(orders) > 0 {
		orderTotal := 0.0
		for _, order := range orders {
			orderTotal += order.TotalPrice
		}
		averageOrderValue = utils.RoundWithTwoDecimalPlace(orderTotal / float64(len(orders)))
	}

	return &domain.SalesAnalysis{
		DailySales:        dailySales,
		MovingAverages:    MovingAverage(dailySales, s.window),
		Seasonality:       Seasonality(dailySales),
		TotalSales:        totalSales,
		AverageOrderValue: averageOrderValue,
	}
}

// generatePredictions projeta os próximos 30 dias e o crescimento geral do
// período, junto com os produtos de melhor desempenho.
func (s *Service) generatePredictions(
	orders []*domain.OrderRecord,
	dailySales domain.DailySeries,
	productPerformance map[string]*domain.PerformanceStats,
) *domain.Predictions {
	return &domain.Predictions{
		NextMonthSales:  ForecastDailySales(dailySales),
		TopProducts:     TopProducts(productPerformance),
		PredictedGrowth: overallGrowth(orders),
	}
}

// overallGrowth aplica a taxa de crescimento de metades sobre os totais dos
// pedidos em ordem cronológica.
func overallGrowth(orders []*domain.OrderRecord) float64 {
	sorted := make([]*domain.OrderRecord, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	totals := make([]float64, 0, len(sorted))
	for _, order := range sorted {
		totals = append(totals, order.TotalPrice)
	}

	return GrowthRate(totals)
}

func generateMarketingInsights(productPerformance map[string]*domain.PerformanceStats) *domain.MarketingInsights {
	recommended := RecommendedProducts(productPerformance)

	return &domain.MarketingInsights{
		RecommendedProducts: recommended,
		CampaignSuggestions: CampaignSuggestions(recommended, productPerformance),
		BudgetAllocation:    BudgetAllocation(productPerformance),
	}
}
