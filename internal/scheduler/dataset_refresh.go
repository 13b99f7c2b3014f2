package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetRefreshConfig representa a configuração do agendador de atualização do dataset
type DatasetRefreshConfig struct {
	CronSchedule   string
	SourceURL      string
	RefreshEnabled bool
}

// DatasetRefreshService gerencia o agendamento da reimportação periódica do
// dataset a partir da fonte configurada.
type DatasetRefreshService struct {
	scheduler            *gocron.Scheduler
	config               DatasetRefreshConfig
	dataset              importRunner
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
}

// importRunner evita acoplar o agendador ao tipo concreto do dataset.
type importRunner interface {
	RunImport(ctx context.Context, url, source string) (*domain.ImportReport, error)
}

// NewDatasetRefreshService cria uma nova instância do agendador de atualização
func NewDatasetRefreshService(dataset importRunner, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		SourceURL:      appConfig.DatasetRefresh.SourceURL,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"source_url":      refreshConfig.SourceURL,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		dataset:   dataset,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização agendada do dataset desabilitada por configuração")
		return nil
	}

	if s.config.SourceURL == "" {
		return fmt.Errorf("atualização agendada habilitada sem DATASET_REFRESH_SOURCE_URL")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	return nil
}

// Stop interrompe o agendador
func (s *DatasetRefreshService) Stop() {
	s.scheduler.Stop()
	logrus.Info("Agendador de atualização do dataset interrompido")
}

// RunNow dispara uma atualização imediata, usada pelo endpoint administrativo.
func (s *DatasetRefreshService) RunNow(ctx context.Context) {
	s.refreshDataset(ctx)
}

func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	// Evita execuções sobrepostas quando uma atualização demora mais que o intervalo
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Atualização do dataset ignorada: execução anterior ainda em andamento")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshEndedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	report, err := s.dataset.RunImport(ctx, s.config.SourceURL, domain.ImportSourceCron)
	if err != nil {
		// Falha de busca é recuperável: o dataset já degradou para vazio
		logrus.WithError(err).WithField("source_url", s.config.SourceURL).
			Warn("Atualização agendada falhou ao buscar a fonte")
		return
	}

	logrus.WithFields(logrus.Fields{
		"import_id":   report.ID,
		"records":     report.RowsImported,
		"diagnostics": report.DiagnosticCount,
	}).Info("Atualização agendada do dataset concluída")
}

// Status devolve o estado corrente do agendador para o endpoint administrativo.
func (s *DatasetRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"enabled":         s.config.RefreshEnabled,
		"cron_schedule":   s.config.CronSchedule,
		"running":         s.refreshRunning,
		"last_started_at": s.lastRefreshStartedAt,
		"last_ended_at":   s.lastRefreshEndedAt,
	}
}
