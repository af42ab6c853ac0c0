package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lojaviva/commerce-analytics-api/infrastructure/database/postgres"
	"github.com/lojaviva/commerce-analytics-api/infrastructure/repository"
	"github.com/lojaviva/commerce-analytics-api/internal/api"
	"github.com/lojaviva/commerce-analytics-api/internal/config"
	"github.com/lojaviva/commerce-analytics-api/internal/scheduler"
	"github.com/lojaviva/commerce-analytics-api/internal/usecases/analyzing"
	"github.com/lojaviva/commerce-analytics-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyticsService := analyzing.NewService(orderRepo, cfg)

	// Inicializa o agendador do resumo diário de analytics
	analyticsDigestService := scheduler.NewAnalyticsDigestService(analyticsService, cfg)

	if err := analyticsDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de analytics")
	} else {
		logrus.Info("Agendador do resumo de analytics iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		analyticsDigestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
