package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth:      config.Auth{AdminEmail: "Admin@Example.com", AdminPasswordHash: string(hash)},
		SecretKey: "segredo-de-teste",
	}
	return NewService(cfg).(*Service)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(s *Service)
		validate func(t *testing.T, s *Service, token string, err error)
	}{
		{
			name:     "credenciais corretas",
			email:    " admin@example.com",
			password: "s3nha-forte",
			validate: func(t *testing.T, s *Service, token string, err error) {
				require.NoError(t, err)
				claims, err := s.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "admin@example.com", claims.UserEmail)
				assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
				assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
			},
		},
		{
			name:     "campos vazios",
			email:    "",
			password: "",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "senha incorreta",
			email:    "admin@example.com",
			password: "outra",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
			},
		},
		{
			name:     "email desconhecido",
			email:    "someone@example.com",
			password: "s3nha-forte",
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "administrador sem hash",
			email:    "admin@example.com",
			password: "s3nha-forte",
			setup: func(s *Service) {
				s.admin.PasswordHash = ""
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrAdminNotConfigured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			if tt.setup != nil {
				tt.setup(s)
			}

			token, err := s.LoginUser(tt.email, tt.password)
			tt.validate(t, s, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	s := newTestService(t)

	t.Run("token expirado", func(t *testing.T) {
		s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		t.Cleanup(func() { s.now = time.Now })

		token, err := s.LoginUser("admin@example.com", "s3nha-forte")
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinado com outra chave", func(t *testing.T) {
		token, err := generateJWT(s.admin, "outra-chave", time.Now())
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo não HMAC", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserEmail: "admin@example.com"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto qualquer", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
