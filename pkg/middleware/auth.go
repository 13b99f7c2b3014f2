package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas acessíveis sem token: login, healthcheck e o CSV de exemplo,
// que também serve de fixture para consumidores externos.
var publicPaths = map[string]bool{
	"/v1/login":          true,
	"/healthcheck":       true,
	"/v1/dataset/sample": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
