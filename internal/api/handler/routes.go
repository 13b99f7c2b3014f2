package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dataset"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dataset(service *dataset.Service, importRepo repository.ImportReportRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/import",
			Method:  http.MethodPost,
			Handler: ImportDataset(service),
		},
		{
			Path:    "/v1/dataset/import/url",
			Method:  http.MethodPost,
			Handler: ImportDatasetFromURL(service),
		},
		{
			Path:    "/v1/dataset/imports",
			Method:  http.MethodGet,
			Handler: ListImports(importRepo),
		},
		{
			Path:    "/v1/dataset/sample",
			Method:  http.MethodGet,
			Handler: DownloadSample(),
		},
		{
			Path:    "/v1/dataset/filter",
			Method:  http.MethodGet,
			Handler: GetFilter(service),
		},
		{
			Path:    "/v1/dataset/filter",
			Method:  http.MethodPatch,
			Handler: UpdateFilter(service),
		},
	}
}

func Insights(service *dataset.Service, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/insights/products",
			Method:  http.MethodGet,
			Handler: GetProductAggregates(service),
		},
		{
			Path:    "/v1/insights/regions",
			Method:  http.MethodGet,
			Handler: GetRegionAggregates(service),
		},
		{
			Path:    "/v1/insights/segments",
			Method:  http.MethodGet,
			Handler: GetCustomerSegments(service),
		},
		{
			Path:    "/v1/insights/series",
			Method:  http.MethodGet,
			Handler: GetTimeSeries(service, cfg),
		},
	}
}

func CronJobs(service *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/refresh",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(service),
		},
		{
			Path:    "/v1/cron/refresh/status",
			Method:  http.MethodGet,
			Handler: RefreshStatus(service),
		},
	}
}
