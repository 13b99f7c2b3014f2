package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/parsing"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Snapshot representa um par (registros, filtro) consistente, capturado sob
// o mesmo lock. Toda visão derivada deve ser calculada a partir de um
// snapshot, nunca de leituras separadas do estado.
type Snapshot struct {
	Records []domain.SalesRecord
	Filter  domain.FilterCriteria
}

// FilteredRecords devolve os registros do snapshot que passam pelo filtro.
func (s Snapshot) FilteredRecords() []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(s.Records))
	for _, record := range s.Records {
		if s.Filter.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Service é o dono do estado do dataset: o conjunto atual de registros
// (substituído por inteiro a cada importação) e o filtro ativo (atualizado
// por merge). Todas as mutações passam pelo mesmo lock de escrita.
type Service struct {
	mu          sync.RWMutex
	records     []domain.SalesRecord
	filter      domain.FilterCriteria
	subscribers []chan struct{}

	parser           *parsing.Service
	fetcher          SourceFetcher
	importReportRepo repository.ImportReportRepository
}

// NewService cria o dataset com o filtro padrão: últimos N dias, sem
// restrição de região, categoria ou segmento.
func NewService(cfg *config.Config, parser *parsing.Service, fetcher SourceFetcher) *Service {
	lookback := cfg.Dataset.DefaultLookbackDays
	if lookback <= 0 {
		lookback = 30
	}

	now := time.Now().Truncate(24 * time.Hour)

	return &Service{
		records: make([]domain.SalesRecord, 0),
		filter: domain.FilterCriteria{
			DateRange: domain.DateRange{
				Start: now.AddDate(0, 0, -lookback),
				End:   now.AddDate(0, 0, 1).Add(-time.Nanosecond),
			},
			Regions:          []string{},
			Categories:       []string{},
			CustomerSegments: []string{},
		},
		parser:  parser,
		fetcher: fetcher,
	}
}

// WithImportReports habilita a trilha de auditoria de importações
func (s *Service) WithImportReports(repo repository.ImportReportRepository) *Service {
	s.importReportRepo = repo
	return s
}

// ReplaceRecords substitui atomicamente o conjunto inteiro de registros.
// Nenhum observador vê uma mistura de registros antigos e novos.
func (s *Service) ReplaceRecords(records []domain.SalesRecord) {
	s.mu.Lock()
	s.records = append(make([]domain.SalesRecord, 0, len(records)), records...)
	s.notifyLocked()
	s.mu.Unlock()

	logrus.WithField("records", len(records)).Info("Conjunto de registros substituído")
}

// UpdateFilter aplica um merge raso da atualização parcial sobre o filtro
// atual: campos omitidos mantêm o valor anterior.
func (s *Service) UpdateFilter(update domain.FilterUpdate) domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.DateRange != nil {
		s.filter.DateRange = *update.DateRange
	}
	if update.Regions != nil {
		s.filter.Regions = append([]string{}, (*update.Regions)...)
	}
	if update.Categories != nil {
		s.filter.Categories = append([]string{}, (*update.Categories)...)
	}
	if update.CustomerSegments != nil {
		s.filter.CustomerSegments = append([]string{}, (*update.CustomerSegments)...)
	}

	s.notifyLocked()
	return s.filter
}

// Filter devolve o filtro ativo.
func (s *Service) Filter() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Snapshot captura registros e filtro sob o mesmo lock de leitura.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Records: append(make([]domain.SalesRecord, 0, len(s.records)), s.records...),
		Filter:  s.filter,
	}
}

// FilteredRecords devolve a visão filtrada corrente.
func (s *Service) FilteredRecords() []domain.SalesRecord {
	return s.Snapshot().FilteredRecords()
}

// Subscribe devolve um canal que recebe um evento a cada mudança de estado
// concluída. O envio é não bloqueante: consumidores lentos perdem eventos
// intermediários, nunca observam estado parcial.
func (s *Service) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *Service) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ImportText processa texto bruto e substitui o dataset pelo resultado.
// Linhas problemáticas viram diagnósticos no relatório; a importação sempre
// termina com um conjunto válido (possivelmente vazio) de registros.
func (s *Service) ImportText(ctx context.Context, text, source string) (*domain.ImportReport, parsing.Result) {
	result := s.parser.Parse(text)
	s.ReplaceRecords(result.Records)

	report := s.buildReport(ctx, source, result)
	return report, result
}

// ImportFromSource busca o texto de uma URL e executa o mesmo caminho de
// importação. Uma falha de busca degrada para o conjunto vazio com um
// diagnóstico, nunca mantém dados antigos nem derruba o processo.
func (s *Service) ImportFromSource(ctx context.Context, url, source string) (*domain.ImportReport, parsing.Result, error) {
	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		logrus.WithError(err).WithField("url", url).Warn("Falha ao buscar a fonte de dados, dataset esvaziado")

		result := parsing.Result{
			Records: make([]domain.SalesRecord, 0),
			Diagnostics: []parsing.Diagnostic{
				{
					Code:    parsing.DiagSourceFetch,
					Message: "source fetch failed: " + err.Error(),
				},
			},
		}

		s.ReplaceRecords(result.Records)
		report := s.buildReport(ctx, source, result)
		return report, result, err
	}

	report, result := s.ImportText(ctx, string(data), source)
	return report, result, nil
}

// RunImport é a forma reduzida de ImportFromSource consumida pelo agendador.
func (s *Service) RunImport(ctx context.Context, url, source string) (*domain.ImportReport, error) {
	report, _, err := s.ImportFromSource(ctx, url, source)
	if err != nil {
		return report, err
	}
	return report, nil
}

func (s *Service) buildReport(ctx context.Context, source string, result parsing.Result) *domain.ImportReport {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar ID do relatório de importação")
	}

	report := &domain.ImportReport{
		ID:              id,
		Source:          source,
		RowsImported:    len(result.Records),
		RowsSkipped:     result.RowsSkipped(),
		DiagnosticCount: len(result.Diagnostics),
		Diagnostics:     result.DiagnosticMessages(),
		CreatedAt:       time.Now(),
	}

	// A persistência da auditoria nunca é fatal para o estado do dataset
	if s.importReportRepo != nil {
		if err := s.importReportRepo.Save(ctx, report); err != nil {
			logrus.WithError(err).WithField("import_id", report.ID).Warn("Erro ao salvar relatório de importação")
		}
	}

	logrus.WithFields(logrus.Fields{
		"import_id":   report.ID,
		"source":      source,
		"records":     report.RowsImported,
		"diagnostics": report.DiagnosticCount,
	}).Info("Importação concluída")

	return report
}
