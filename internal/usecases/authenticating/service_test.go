package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		SecretKey: "test_secret_key",
		Auth: config.Auth{
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			TokenTTLHours:     1,
		},
	}
}

func TestService_Login(t *testing.T) {
	cfg := authConfig(t, "s3nha-forte")
	service := NewService(cfg)

	tests := []struct {
		name          string
		username      string
		password      string
		expectedError error
	}{
		{
			name:     "Credenciais corretas emitem token",
			username: "admin",
			password: "s3nha-forte",
		},
		{
			name:          "Senha incorreta é rejeitada",
			username:      "admin",
			password:      "senha-errada",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "Usuário desconhecido é rejeitado",
			username:      "intruso",
			password:      "s3nha-forte",
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Username)
		})
	}
}

func TestService_Login_NotConfigured(t *testing.T) {
	service := NewService(&config.Config{SecretKey: "test_secret_key"})

	_, err := service.Login("admin", "qualquer")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authConfig(t, "s3nha-forte")
	service := NewService(cfg)

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		token, err := service.Login("admin", "s3nha-forte")
		require.NoError(t, err)

		_, err = service.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("Token assinado com outra chave é rejeitado", func(t *testing.T) {
		otherCfg := authConfig(t, "s3nha-forte")
		otherCfg.SecretKey = "outra_chave"
		token, err := NewService(otherCfg).Login("admin", "s3nha-forte")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Lixo não é token", func(t *testing.T) {
		_, err := service.ValidateToken("não-é-um-jwt")
		assert.Error(t, err)
	})
}
