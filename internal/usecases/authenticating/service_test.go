package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	authmocks "github.com/vfg2006/channel-marketing-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Senha@123"

var testConfig = &config.Config{
	SecretKey: "test-secret",
	Auth:      config.Auth{TokenTTLHours: 2},
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository, *authmocks.MockTokenDenylist) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	denylist := authmocks.NewMockTokenDenylist(ctrl)
	return NewService(userRepo, denylist, testConfig).(*Service), userRepo, denylist
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		password string
		valid    bool
	}{
		{"Senha@123", true},
		{"curta@1A", true},
		{"Ab@1", false},
		{"semmaiuscula@1", false},
		{"SEMMINUSCULA@1", false},
		{"SemNumero@@", false},
		{"SemEspecial12", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, _ := newTestService(ctrl)

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.UserRoleUser, user.Role)
			assert.True(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(testPassword)))
			user.ID = 10
			return user, nil
		})

	response, err := service.Register(context.Background(), &domain.RegisterRequest{
		Email:    " Ana@Example.com ",
		Password: testPassword,
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, response.User.ID)
	assert.NotEmpty(t, response.Token)
}

func TestService_Register_Errors(t *testing.T) {
	tests := []struct {
		name         string
		request      *domain.RegisterRequest
		setup        func(repo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Dados ausentes",
			request:      &domain.RegisterRequest{Email: "ana@example.com"},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Senha fraca",
			request:      &domain.RegisterRequest{Email: "ana@example.com", Name: "Ana", Password: "123"},
			expectedErr:  ErrWeakPassword,
			expectedCode: apiErrors.ErrWeakPassword,
		},
		{
			name:    "Email já cadastrado",
			request: &domain.RegisterRequest{Email: "ana@example.com", Name: "Ana", Password: testPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedErr:  ErrUserAlreadyExists,
			expectedCode: apiErrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo, _ := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(userRepo)
			}

			_, err := service.Register(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.expectedErr)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		user        func(t *testing.T) *domain.User
		expectedErr error
	}{
		{
			name:     "Login válido",
			password: testPassword,
			user: func(t *testing.T) *domain.User {
				return &domain.User{ID: 1, Email: "ana@example.com", PasswordHash: hashPassword(t, testPassword), Role: domain.UserRoleAdmin, Active: true}
			},
		},
		{
			name:        "Usuário inexistente",
			password:    testPassword,
			user:        func(*testing.T) *domain.User { return nil },
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Senha incorreta",
			password: "Outra@123",
			user: func(t *testing.T) *domain.User {
				return &domain.User{ID: 1, PasswordHash: hashPassword(t, testPassword), Active: true}
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Usuário desativado",
			password: testPassword,
			user: func(t *testing.T) *domain.User {
				return &domain.User{ID: 1, PasswordHash: hashPassword(t, testPassword), Active: false}
			},
			expectedErr: ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo, denylist := newTestService(ctrl)
			userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(tt.user(t), nil)

			response, err := service.LoginUser(context.Background(), "ANA@example.com", tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)

			denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
			claims, err := service.ValidateToken(context.Background(), response.Token)
			require.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.True(t, claims.IsAdmin())
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, denylist := newTestService(ctrl)
	user := &domain.User{ID: 3, Role: domain.UserRoleUser}

	t.Run("Token revogado", func(t *testing.T) {
		token, err := service.generateJWT(user)
		require.NoError(t, err)

		denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err = service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrRevokedToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
		defer func() { service.now = time.Now }()

		token, err := service.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinatura inválida", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserID: 3}).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = service.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Falha do Redis não bloqueia", func(t *testing.T) {
		token, err := service.generateJWT(user)
		require.NoError(t, err)

		denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

		claims, err := service.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, 3, claims.UserID)
	})
}

func TestService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, denylist := newTestService(ctrl)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	claims := &domain.Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(90 * time.Minute)),
		},
	}

	denylist.EXPECT().Revoke(gomock.Any(), "jti-1", 90*time.Minute).Return(nil)
	assert.NoError(t, service.Logout(context.Background(), claims))

	err := service.Logout(context.Background(), &domain.Claims{UserID: 3})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Logout_WithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), nil, testConfig)

	claims := &domain.Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "jti-2"}}
	assert.NoError(t, service.Logout(context.Background(), claims))
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		newPassword string
		expectedErr error
	}{
		{name: "Senha alterada", current: testPassword, newPassword: "Nova@4567"},
		{name: "Senha atual incorreta", current: "Errada@123", newPassword: "Nova@4567", expectedErr: ErrInvalidCredentials},
		{name: "Mesma senha", current: testPassword, newPassword: testPassword, expectedErr: ErrSamePassword},
		{name: "Nova senha fraca", current: testPassword, newPassword: "fraca", expectedErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo, _ := newTestService(ctrl)
			userRepo.EXPECT().
				GetUserByID(gomock.Any(), 5).
				Return(&domain.User{ID: 5, PasswordHash: hashPassword(t, testPassword)}, nil)

			if tt.expectedErr == nil {
				userRepo.EXPECT().UpdatePassword(gomock.Any(), 5, gomock.Any()).Return(nil)
			}

			err := service.ChangePassword(context.Background(), 5, tt.current, tt.newPassword)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_CheckEmail(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		setup        func(repo *mocks.MockUserRepository)
		available    bool
		expectedErr  error
		expectedCode string
	}{
		{
			name:  "Email livre",
			email: " Ana@Example.com ",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
			},
			available: true,
		},
		{
			name:  "Email já cadastrado",
			email: "ana@example.com",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 1}, nil)
			},
		},
		{
			name:         "Email vazio",
			email:        "  ",
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Email sem arroba",
			email:        "ana.example.com",
			expectedErr:  ErrInvalidFormat,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Falha no banco",
			email: "ana@example.com",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, errors.New("connection refused"))
			},
			expectedErr:  ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo, _ := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(userRepo)
			}

			available, err := service.CheckEmail(context.Background(), tt.email)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.available, available)
				return
			}

			assert.False(t, available)
			assert.ErrorIs(t, err, tt.expectedErr)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.expectedCode, authErr.Code)
			assert.NotContains(t, authErr.Details, "connection refused")
		})
	}
}
