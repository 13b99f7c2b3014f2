package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/parsing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ImportDataset importa o CSV enviado no corpo da requisição, substituindo
// o dataset inteiro pelo resultado.
func ImportDataset(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.WithError(err).Warn("dataset: failed to read import body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
			return
		}

		if len(body) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
			return
		}

		report, _ := service.ImportText(r.Context(), string(body), domain.ImportSourceText)

		logger.WithFields(log.Fields{
			"import_id":   report.ID,
			"records":     report.RowsImported,
			"diagnostics": report.DiagnosticCount,
		}).Info("dataset: import finished")

		respondJSON(logger, w, report)
	})
}

type ImportFromURLRequest struct {
	URL string `json:"url"`
}

// ImportDatasetFromURL busca o CSV de uma URL e executa a mesma importação.
// Uma falha de busca degrada para o dataset vazio e volta no relatório como
// diagnóstico; nunca é um erro fatal.
func ImportDatasetFromURL(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ImportFromURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.URL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL da fonte é obrigatória", nil)
			return
		}

		report, _, err := service.ImportFromSource(r.Context(), req.URL, domain.ImportSourceURL)
		if err != nil {
			logger.WithError(err).WithField("url", req.URL).Warn("dataset: source fetch failed, dataset emptied")
		}

		respondJSON(logger, w, report)
	})
}

// DownloadSample devolve o CSV canônico de exemplo.
func DownloadSample() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sample_sales_data.csv"`)

		if _, err := w.Write([]byte(parsing.SampleCSV())); err != nil {
			logger.WithError(err).Error("dataset: failed to write sample csv")
		}
	})
}

// GetFilter devolve o filtro ativo.
func GetFilter(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		respondJSON(logger, w, service.Filter())
	})
}

type UpdateFilterRequest struct {
	StartDate        *string   `json:"start_date,omitempty"`
	EndDate          *string   `json:"end_date,omitempty"`
	Regions          *[]string `json:"regions,omitempty"`
	Categories       *[]string `json:"categories,omitempty"`
	CustomerSegments *[]string `json:"customer_segments,omitempty"`
}

// UpdateFilter aplica uma atualização parcial ao filtro: campos omitidos
// mantêm o valor anterior.
func UpdateFilter(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req UpdateFilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		update := domain.FilterUpdate{
			Regions:          req.Regions,
			Categories:       req.Categories,
			CustomerSegments: req.CustomerSegments,
		}

		// O intervalo de datas só muda quando as duas pontas são informadas
		if req.StartDate != nil || req.EndDate != nil {
			if req.StartDate == nil || req.EndDate == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "start_date e end_date devem ser informados juntos", nil)
				return
			}

			startDate, err := utils.ParseDate(*req.StartDate)
			if err != nil {
				logger.WithField("start_date", *req.StartDate).Warn("dataset: invalid start_date")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "start_date inválida", nil)
				return
			}

			endDate, err := utils.ParseDate(*req.EndDate)
			if err != nil {
				logger.WithField("end_date", *req.EndDate).Warn("dataset: invalid end_date")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "end_date inválida", nil)
				return
			}

			if startDate.After(*endDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "start_date não pode ser posterior a end_date", nil)
				return
			}

			update.DateRange = &domain.DateRange{Start: *startDate, End: *endDate}
		}

		filter := service.UpdateFilter(update)

		logger.Info("dataset: filter updated")
		respondJSON(logger, w, filter)
	})
}

// ListImports devolve os relatórios de importação mais recentes.
func ListImports(repo repository.ImportReportRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if repo == nil {
			respondJSON(logger, w, []*domain.ImportReport{})
			return
		}

		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		reports, err := repo.ListRecent(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("dataset: failed to list import reports")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar importações", nil)
			return
		}

		respondJSON(logger, w, reports)
	})
}
