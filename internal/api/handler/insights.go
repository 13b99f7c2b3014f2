package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/downsampling"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Cada handler de insight parte de um único snapshot do dataset: registros e
// filtro capturados juntos, nunca misturando gerações de estado.

func GetDashboardMetrics(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := service.Snapshot()
		metrics := aggregating.Metrics(snapshot.FilteredRecords())

		logger.WithField("records", len(snapshot.Records)).Debug("insights: dashboard metrics computed")
		respondJSON(logger, w, metrics)
	})
}

func GetProductAggregates(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		aggregates := aggregating.ProductAggregates(service.Snapshot().FilteredRecords())

		// Ordenação por receita é responsabilidade da borda de apresentação
		sort.Slice(aggregates, func(i, j int) bool {
			return aggregates[i].TotalRevenue > aggregates[j].TotalRevenue
		})

		respondJSON(logger, w, aggregates)
	})
}

func GetRegionAggregates(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		aggregates := aggregating.RegionAggregates(service.Snapshot().FilteredRecords())

		sort.Slice(aggregates, func(i, j int) bool {
			return aggregates[i].Revenue > aggregates[j].Revenue
		})

		respondJSON(logger, w, aggregates)
	})
}

func GetCustomerSegments(service *dataset.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		respondJSON(logger, w, aggregating.CustomerSegments(service.Snapshot().FilteredRecords()))
	})
}

type TimeSeriesResponse struct {
	Metric       string             `json:"metric"`
	Granularity  string             `json:"granularity"`
	Points       []downsampledPoint `json:"points"`
	TotalBuckets int                `json:"total_buckets"`
}

type downsampledPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// GetTimeSeries devolve a série temporal da métrica pedida, reduzida pelo
// downsampler quando max_points limita o tamanho.
func GetTimeSeries(service *dataset.Service, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metric, err := aggregating.ParseSeriesMetric(r.URL.Query().Get("metric"))
		if err != nil {
			logger.WithField("metric", r.URL.Query().Get("metric")).Warn("insights: invalid series metric")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSeriesParams, "Métrica inválida: use revenue ou orders", nil)
			return
		}

		granularity, err := aggregating.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			logger.WithField("granularity", r.URL.Query().Get("granularity")).Warn("insights: invalid granularity")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSeriesParams, "Granularidade inválida: use hour, day, week ou month", nil)
			return
		}

		maxPoints := cfg.Chart.DefaultMaxPoints
		if raw := r.URL.Query().Get("max_points"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidSeriesParams, "max_points inválido", nil)
				return
			}
			maxPoints = parsed
		}

		buckets := aggregating.TimeSeries(service.Snapshot().FilteredRecords(), metric, granularity)
		points := downsampling.Reduce(aggregating.ChartPoints(buckets), maxPoints)

		response := TimeSeriesResponse{
			Metric:       string(metric),
			Granularity:  string(granularity),
			Points:       make([]downsampledPoint, 0, len(points)),
			TotalBuckets: len(buckets),
		}
		for _, p := range points {
			response.Points = append(response.Points, downsampledPoint{X: p.X, Y: p.Y})
		}

		logger.WithFields(log.Fields{
			"metric":      string(metric),
			"granularity": string(granularity),
			"buckets":     len(buckets),
			"points":      len(points),
		}).Debug("insights: time series computed")

		respondJSON(logger, w, response)
	})
}
