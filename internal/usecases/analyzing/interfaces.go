package analyzing

import (
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

// Analyzer define a interface do motor de analytics consumido pela API e
// pelo agendador de digest.
type Analyzer interface {
	// AdvancedAnalytics calcula o agregado completo (vendas, desempenho,
	// previsões e insights de marketing) para o período informado.
	AdvancedAnalytics(timeRange domain.TimeRange) (*domain.AdvancedAnalyticsResponse, error)
}
