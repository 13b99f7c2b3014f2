package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrInvalidCredentials) {
				logger.WithField("username", req.Username).Warn("auth: invalid credentials")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}

			logger.WithError(err).Error("auth: login failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao realizar login", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}
