package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/api"
	"github.com/vfg2006/revops-analytics-api/internal/config"
	"github.com/vfg2006/revops-analytics-api/internal/scheduler"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/generating"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/insighting"
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

	datasets := repository.NewDatasets(cfg.Dataset.Dir)
	generator := generating.NewService(generating.FromConfig(cfg))

	// Gera os datasets na primeira execução, quando os arquivos ainda não existem
	if err := ensureDatasets(datasets, generator); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar os datasets")
	}

	insightService := insighting.NewService(
		datasets.Marketing,
		datasets.Pipeline,
		datasets.Revenue,
	)

	refreshService := scheduler.NewDatasetRefreshService(datasets, generator, cfg)

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de regeneração de datasets")
	} else {
		logrus.Info("Agendador de regeneração de datasets iniciado com sucesso")
	}

	server, err := api.New(cfg, datasets, insightService, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// ensureDatasets gera e persiste as tabelas quando ainda não existem em disco
func ensureDatasets(datasets *repository.Datasets, generator generating.Generator) error {
	if _, err := datasets.LoadAll(); err == nil {
		logrus.Info("Datasets encontrados em disco")
		return nil
	} else {
		logrus.WithError(err).Warn("Datasets ausentes ou inválidos em disco, gerando novamente")
	}

	return datasets.SaveAll(generator.All())
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
