package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revops-analytics-api/infrastructure/repository"
	"github.com/vfg2006/revops-analytics-api/internal/config"
	"github.com/vfg2006/revops-analytics-api/internal/usecases/generating"
)

// DatasetRefreshConfig representa a configuração do agendador de regeneração
// dos datasets
type DatasetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DatasetRefreshService gerencia o agendamento e execução da regeneração dos
// datasets sintéticos em disco
type DatasetRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 DatasetRefreshConfig
	appConfig              *config.Config
	datasets               *repository.Datasets
	generator              generating.Generator
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewDatasetRefreshService cria uma nova instância do serviço de regeneração
func NewDatasetRefreshService(
	datasets *repository.Datasets,
	generator generating.Generator,
	appConfig *config.Config,
) *DatasetRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de regeneração de datasets carregada")

	return &DatasetRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		appConfig:      appConfig,
		datasets:       datasets,
		generator:      generator,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Regeneração agendada de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de regeneração de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDatasets()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração de datasets: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de regeneração de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDatasets regenera as quatro tabelas e as persiste em disco,
// invalidando o cache de leitura
func (s *DatasetRefreshService) refreshDatasets() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Regeneração de datasets já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRefreshStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando regeneração dos datasets sintéticos")

	generated := s.generator.All()

	if err := s.datasets.SaveAll(generated); err != nil {
		logrus.WithError(err).Error("Erro ao persistir datasets regenerados")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":       duration.String(),
		"marketing_rows": len(generated.Marketing),
		"pipeline_rows":  len(generated.Pipeline),
		"revenue_rows":   len(generated.Revenue),
		"benchmark_rows": len(generated.Benchmarks),
	}).Info("Regeneração dos datasets concluída")

	s.lastRefreshCompletedAt = time.Now()
}

// TriggerManualRefresh inicia manualmente uma regeneração dos datasets
func (s *DatasetRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Regeneração de datasets já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando regeneração manual dos datasets")
	go s.refreshDatasets()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
