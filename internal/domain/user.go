package domain

import "github.com/golang-jwt/jwt/v5"

// Claims representa as claims do token JWT do operador do painel.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
