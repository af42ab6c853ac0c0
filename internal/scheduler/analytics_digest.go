// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/lojaviva/commerce-analytics-api/internal/config"
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
	"github.com/lojaviva/commerce-analytics-api/internal/usecases/analyzing"
)

type AnalyticsDigestConfig struct {
	CronSchedule string
	TimeRange    domain.TimeRange
	Enabled      bool
}

// AnalyticsDigestService gera periodicamente o relatório avançado de vendas
// e registra um resumo dele nos logs da aplicação.
type AnalyticsDigestService struct {
	scheduler          *gocron.Scheduler
	analyzer           analyzing.Analyzer
	config             AnalyticsDigestConfig
	digestRunning      bool
	digestMutex        sync.Mutex
	lastRunID          string
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewAnalyticsDigestService(analyzer analyzing.Analyzer, cfg *config.Config) *AnalyticsDigestService {
	digestConfig := AnalyticsDigestConfig{
		CronSchedule: cfg.AnalyticsDigest.CronSchedule, // Default: 6h da manhã todos os dias
		TimeRange:    domain.ParseTimeRange(cfg.AnalyticsDigest.TimeRange),
		Enabled:      cfg.AnalyticsDigest.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"time_range":    digestConfig.TimeRange,
	}).Info("Configuração do agendador do resumo de analytics carregada")

	return &AnalyticsDigestService{
		scheduler: scheduler,
		analyzer:  analyzer,
		config:    digestConfig,
	}
}

func (s *AnalyticsDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do resumo de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro ao gerar resumo de analytics")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de analytics: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest gera o relatório avançado e registra um resumo com os principais
// indicadores. Execuções concorrentes são ignoradas.
func (s *AnalyticsDigestService) RunDigest() error {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Warn("Resumo de analytics já está em execução")
		return nil
	}

	runID, err := gonanoid.New()
	if err != nil {
		s.digestMutex.Unlock()
		return fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	s.digestRunning = true
	s.lastRunID = runID
	s.lastRunStartedAt = time.Now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.digestRunning = false
		s.lastRunCompletedAt = time.Now()
		s.digestMutex.Unlock()
	}()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"time_range": s.config.TimeRange,
	})

	logger.Info("Iniciando geração do resumo de analytics")

	report, err := s.analyzer.AdvancedAnalytics(s.config.TimeRange)
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar relatório avançado")
		return err
	}

	s.logDigest(logger, report)

	logger.Info("Resumo de analytics concluído")

	return nil
}

func (s *AnalyticsDigestService) logDigest(logger *logrus.Entry, report *domain.AdvancedAnalyticsResponse) {
	logger.WithFields(digestFields(report)).Info("Resumo de analytics gerado")
}

// digestFields extrai do relatório os indicadores registrados no resumo.
func digestFields(report *domain.AdvancedAnalyticsResponse) logrus.Fields {
	fields := logrus.Fields{
		"total_sales":         report.SalesAnalysis.TotalSales,
		"average_order_value": report.SalesAnalysis.AverageOrderValue,
		"predicted_growth":    report.Predictions.PredictedGrowth,
	}

	if len(report.Predictions.TopProducts) > 0 {
		fields["top_product"] = report.Predictions.TopProducts[0].Name
	}

	if len(report.Predictions.NextMonthSales) > 0 {
		var projected float64
		for _, point := range report.Predictions.NextMonthSales {
			projected += point.PredictedSales
		}
		fields["projected_next_month_sales"] = projected
	}

	return fields
}

// TriggerManualSync inicia manualmente a geração do resumo de analytics
func (s *AnalyticsDigestService) TriggerManualSync() {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Info("Resumo de analytics já em andamento, ignorando solicitação manual")
		return
	}
	s.digestMutex.Unlock()

	logrus.Info("Iniciando geração manual do resumo de analytics")
	go s.RunDigest()
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsDigestService) GetStatus() map[string]any {
	s.digestMutex.Lock()
	defer s.digestMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"time_range":            s.config.TimeRange,
		"running":               s.digestRunning,
		"last_run_id":           s.lastRunID,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
