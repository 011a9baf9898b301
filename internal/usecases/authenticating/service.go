package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Register(ctx context.Context, request *domain.RegisterRequest) (*domain.AuthResponse, error)
	LoginUser(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	Logout(ctx context.Context, claims *domain.Claims) error
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
	CheckEmail(ctx context.Context, email string) (bool, error)
}

type Service struct {
	userRepo  repository.UserRepository
	denylist  TokenDenylist
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(userRepo repository.UserRepository, denylist TokenDenylist, cfg *config.Config) Authenticator {
	if denylist == nil {
		denylist = NoopDenylist{}
	}

	return &Service{
		userRepo:  userRepo,
		denylist:  denylist,
		secretKey: cfg.SecretKey,
		tokenTTL:  cfg.Auth.TokenTTL(),
		now:       time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Register(ctx context.Context, request *domain.RegisterRequest) (*domain.AuthResponse, error) {
	name := strings.TrimSpace(request.Name)
	email := handleEmail(request.Email)

	if email == "" || name == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if !strings.Contains(email, "@") {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	if err := s.ValidatePasswordStrength(request.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar senha")
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         domain.UserRoleUser,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		logrus.WithError(err).Error("Error creating user")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.AuthResponse{User: user, Token: token}, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Usuário inexistente e senha errada respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	// Verificar se o usuário está ativo
	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.AuthResponse{User: user, Token: token}, nil
}

// Logout revoga o jti do token até a sua expiração
func (s *Service) Logout(ctx context.Context, claims *domain.Claims) error {
	if claims == nil || claims.ID == "" {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem identificador")
	}

	ttl := s.tokenTTL
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}

	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		logrus.WithError(err).WithField("user_id", claims.UserID).Error("Error revoking token")
		return NewUserAuthError(err, apiErrors.ErrCommunication, claims.UserID, "Erro ao revogar token")
	}

	return nil
}

// CheckEmail informa se o email ainda está livre para cadastro
func (s *Service) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = handleEmail(email)
	if email == "" {
		return false, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email é obrigatório")
	}

	if !strings.Contains(email, "@") {
		return false, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar disponibilidade do email")
		return false, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	return existing == nil, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Falha do Redis não derruba a autenticação
		logrus.WithError(err).Warn("Error checking revoked token")
	}
	if revoked {
		return nil, NewUserAuthError(ErrRevokedToken, apiErrors.ErrInvalidToken, claims.UserID, "Token revogado")
	}

	return claims, nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas, números e caracteres especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}

	// Verificar se a senha atual está correta
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrWeakPassword, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, userID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewUserAuthError(err, apiErrors.ErrInternalServer, userID, "Erro ao processar senha")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar senha")
	}

	return nil
}
