package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrAuthNotConfigured  = errors.New("autenticação não configurada")
)

// Authenticator autentica o operador do painel e valida tokens de acesso.
// O serviço tem uma única identidade de operador, configurada por ambiente;
// não existe cadastro de usuários.
type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login compara as credenciais com o operador configurado e emite um JWT.
func (s *Service) Login(username, password string) (string, error) {
	if s.cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("Login rejeitado: AUTH_ADMIN_PASSWORD_HASH não configurado")
		return "", ErrAuthNotConfigured
	}

	if username != s.cfg.Auth.AdminUsername {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := &domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateToken valida a assinatura e a expiração do token do operador.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
