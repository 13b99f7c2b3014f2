package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/parsing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	parser := parsing.NewService()
	fetcher := dataset.NewHTTPFetcher()
	datasetService := dataset.NewService(cfg, parser, fetcher)

	// A trilha de auditoria de importações é opcional: sem banco o serviço
	// funciona normalmente, apenas sem histórico persistido
	var importRepo repository.ImportReportRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		importRepo = repository.NewImportReportRepository(pgConn)
		if err := importRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o schema de relatórios de importação")
		}

		datasetService = datasetService.WithImportReports(importRepo)
	} else {
		logrus.Warn("Banco de dados desabilitado: relatórios de importação não serão persistidos")
	}

	refreshService := scheduler.NewDatasetRefreshService(datasetService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	} else {
		logrus.Info("Agendador de atualização do dataset iniciado com sucesso")
	}
	defer refreshService.Stop()

	server, err := api.New(
		cfg,
		datasetService,
		authenticator,
		importRepo,
		refreshService,
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
