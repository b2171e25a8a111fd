package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
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

	salesRepo := repository.NewStaticSalesRepository()
	cronServices := handler.CronJobServices{}

	if cfg.UsesDatabase() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		salesRepo = repository.NewSalesRepository(pgConn)
		totalsRepo := repository.NewYearlyTotalRepository(pgConn)

		yearlyTotalsSyncService := scheduler.NewYearlyTotalsSyncService(salesRepo, totalsRepo, cfg)
		if err := yearlyTotalsSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de totais anuais")
		} else {
			logrus.Info("Agendador de totais anuais iniciado com sucesso")
		}
		cronServices.YearlyTotalsSyncService = yearlyTotalsSyncService
	}

	logrus.WithField("sales_source", cfg.Dashboard.SalesSource).Info("Fonte de dados de vendas selecionada")

	reporter := reporting.NewService(salesRepo, cfg)
	authenticator := authenticating.NewService(cfg)

	if cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH vazio: rotas de cron ficarão inacessíveis")
	}

	server, err := api.New(cfg, reporter, authenticator, cronServices)
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
	_ = os.Chdir(dir)

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
