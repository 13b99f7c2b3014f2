package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// fakeImportRunner registra as chamadas de importação feitas pelo agendador.
type fakeImportRunner struct {
	mu      sync.Mutex
	calls   []string
	sources []string
	report  *domain.ImportReport
	err     error
}

func (f *fakeImportRunner) RunImport(_ context.Context, url, source string) (*domain.ImportReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	f.sources = append(f.sources, source)
	return f.report, f.err
}

func (f *fakeImportRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func refreshConfig(enabled bool, sourceURL string) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 5 * * *",
			SourceURL:    sourceURL,
			Enabled:      enabled,
		},
	}
}

func TestDatasetRefreshService_Start(t *testing.T) {
	tests := []struct {
		name          string
		cfg           *config.Config
		expectedError bool
	}{
		{
			name:          "Desabilitado por configuração não agenda nada",
			cfg:           refreshConfig(false, ""),
			expectedError: false,
		},
		{
			name:          "Habilitado sem URL da fonte é erro de configuração",
			cfg:           refreshConfig(true, ""),
			expectedError: true,
		},
		{
			name:          "Habilitado com URL agenda com sucesso",
			cfg:           refreshConfig(true, "https://example.com/sales.csv"),
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeImportRunner{report: &domain.ImportReport{ID: "imp_1"}}
			service := NewDatasetRefreshService(runner, tt.cfg)
			defer service.Stop()

			err := service.Start(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// O agendamento em si não dispara importação imediata
			assert.Equal(t, 0, runner.callCount())
		})
	}
}

func TestDatasetRefreshService_RunNow(t *testing.T) {
	runner := &fakeImportRunner{report: &domain.ImportReport{ID: "imp_1", RowsImported: 6}}
	service := NewDatasetRefreshService(runner, refreshConfig(true, "https://example.com/sales.csv"))

	service.RunNow(context.Background())

	require.Equal(t, 1, runner.callCount())
	assert.Equal(t, "https://example.com/sales.csv", runner.calls[0])
	assert.Equal(t, domain.ImportSourceCron, runner.sources[0])

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.NotNil(t, status["last_started_at"])
	assert.NotNil(t, status["last_ended_at"])
}

func TestDatasetRefreshService_RunNow_ImportFailure(t *testing.T) {
	runner := &fakeImportRunner{err: errors.New("connection refused")}
	service := NewDatasetRefreshService(runner, refreshConfig(true, "https://example.com/sales.csv"))

	// Falha de importação é recuperável: não derruba o agendador
	service.RunNow(context.Background())
	service.RunNow(context.Background())

	assert.Equal(t, 2, runner.callCount())
	assert.Equal(t, false, service.Status()["running"])
}

func TestDatasetRefreshService_Status(t *testing.T) {
	runner := &fakeImportRunner{}
	service := NewDatasetRefreshService(runner, refreshConfig(true, "https://example.com/sales.csv"))

	status := service.Status()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 5 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
}
