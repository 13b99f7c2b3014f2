package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RunRefreshJob dispara manualmente a atualização agendada do dataset.
func RunRefreshJob(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRefreshJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização não disponível", nil)
			return
		}

		// Roda fora do contexto da requisição: a importação continua
		// mesmo depois da resposta ser enviada
		go service.RunNow(context.Background())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"message":"Atualização do dataset iniciada"}`))
	}
}

// RefreshStatus devolve o estado do agendador de atualização.
func RefreshStatus(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização não disponível", nil)
			return
		}

		respondJSON(logger, w, service.Status())
	}
}
