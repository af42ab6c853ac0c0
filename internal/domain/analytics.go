package domain

import "time"

// DailySeries mapeia a data (YYYY-MM-DD) para o total vendido no dia.
// No máximo uma entrada por data; dias sem pedidos não aparecem.
type DailySeries map[string]float64

// SeasonalProfile guarda as médias de venda por dia da semana (0 = domingo)
// e por mês do ano (0 = janeiro). Buckets sem observação ficam ausentes e
// devem ser tratados como fator neutro pelos consumidores.
type SeasonalProfile struct {
	Weekly  map[int]float64 `json:"weekly"`
	Monthly map[int]float64 `json:"monthly"`
}

// TrendLine é o resultado do ajuste de mínimos quadrados sobre os índices
// 0..n-1 de uma série ordenada cronologicamente.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// ForecastPoint é a projeção de vendas para um dia futuro.
type ForecastPoint struct {
	Date           string  `json:"date"`
	PredictedSales float64 `json:"predictedSales"`
	Confidence     int     `json:"confidence"`
}

// TrendPoint é uma observação individual de venda usada nas séries de
// tendência por produto e por categoria.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Sales float64   `json:"sales"`
}

// PerformanceStats acumula o desempenho de um produto ou categoria.
// ProductCount só é preenchido na variante por categoria.
type PerformanceStats struct {
	Name         string        `json:"name"`
	TotalSales   float64       `json:"totalSales"`
	QuantitySold int           `json:"quantitySold"`
	AveragePrice float64       `json:"averagePrice"`
	GrowthRate   float64       `json:"growthRate"`
	SalesTrend   []*TrendPoint `json:"salesTrend"`
	ProductCount int           `json:"productCount,omitempty"`
}

// SalesAnalysis é o bloco de análise de vendas da resposta agregada.
type SalesAnalysis struct {
	DailySales        DailySeries     `json:"dailySales"`
	MovingAverages    DailySeries     `json:"movingAverages"`
	Seasonality       SeasonalProfile `json:"seasonality"`
	TotalSales        float64         `json:"totalSales"`
	AverageOrderValue float64         `json:"averageOrderValue"`
}

// TopProductPrediction é um dos produtos de melhor desempenho com a
// projeção de vendas derivada da taxa de crescimento.
type TopProductPrediction struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PredictedSales float64 `json:"predictedSales"`
	Confidence     float64 `json:"confidence"`
}

// Predictions agrupa as saídas preditivas.
type Predictions struct {
	NextMonthSales  []*ForecastPoint        `json:"nextMonthSales"`
	TopProducts     []*TopProductPrediction `json:"topProducts"`
	PredictedGrowth float64                 `json:"predictedGrowth"`
}

// RecommendedProduct é um produto em crescimento com ação sugerida.
type RecommendedProduct struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	GrowthRate      float64 `json:"growthRate"`
	SuggestedAction string  `json:"suggestedAction"`
}

// Campaign descreve a campanha sugerida para um produto recomendado.
type Campaign struct {
	Type           string  `json:"type"`
	Duration       string  `json:"duration"`
	Budget         float64 `json:"budget"`
	TargetAudience string  `json:"targetAudience"`
	KeyMessage     string  `json:"keyMessage"`
}

// CampaignSuggestion vincula um produto à campanha sugerida.
type CampaignSuggestion struct {
	ProductID         string   `json:"productId"`
	ProductName       string   `json:"productName"`
	SuggestedCampaign Campaign `json:"suggestedCampaign"`
}

// BudgetAllocation é a fatia de orçamento sugerida para um produto.
type BudgetAllocation struct {
	ProductName     string  `json:"productName"`
	SuggestedBudget float64 `json:"suggestedBudget"`
	Priority        string  `json:"priority"`
}

// MarketingInsights agrupa as recomendações de marketing.
type MarketingInsights struct {
	RecommendedProducts []*RecommendedProduct        `json:"recommendedProducts"`
	CampaignSuggestions []*CampaignSuggestion        `json:"campaignSuggestions"`
	BudgetAllocation    map[string]*BudgetAllocation `json:"budgetAllocation"`
}

// AdvancedAnalyticsResponse é o agregado completo devolvido pela API.
type AdvancedAnalyticsResponse struct {
	SalesAnalysis      *SalesAnalysis               `json:"salesAnalysis"`
	ProductPerformance map[string]*PerformanceStats `json:"productPerformance"`
	CategoryAnalysis   map[string]*PerformanceStats `json:"categoryAnalysis"`
	Predictions        *Predictions                 `json:"predictions"`
	MarketingInsights  *MarketingInsights           `json:"marketingInsights"`
	TimeRange          TimeRange                    `json:"timeRange"`
	GeneratedAt        time.Time                    `json:"generatedAt"`
}
