package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var jsonEncoder = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON serializa a resposta com jsoniter e loga falhas de escrita.
func respondJSON(logger log.Logger, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := jsonEncoder.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
