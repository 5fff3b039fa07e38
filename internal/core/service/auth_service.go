package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// AuthService implements registration, login, and the first-login password
// reset. It also signs and verifies identity tokens.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CollegeID:    input.CollegeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account registered")

	return &ports.AuthResult{Token: token, Account: toAccountView(created)}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both map to ErrInvalidCredentials so the response never reveals
// whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("login")

	return &ports.AuthResult{Token: token, Account: toAccountView(account)}, nil
}

// ChangePassword backs the forced reset after a first login with a default
// credential; it trusts the email and requires no old password.
func (s *AuthService) ChangePassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("password changed, first-login flag cleared")
	return nil
}

func (s *AuthService) signToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":        account.ID,
		"role":       account.Role,
		"college_id": account.ScopeID(),
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Verify parses a signed identity token and returns its claims.
func (s *AuthService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	scope, _ := claims["college_id"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}

	return &ports.TokenClaims{AccountID: sub, Role: role, ScopeID: scope}, nil
}

// toAccountView strips the credential hash and applies the owning-college
// resolution rule: a college account scopes to itself, everyone else to the
// stored reference.
func toAccountView(a *domain.Account) ports.AccountView {
	return ports.AccountView{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		CollegeID:  a.ScopeID(),
		FirstLogin: a.FirstLogin,
		Branch:     a.Branch,
		CGPA:       a.CGPA,
		Phone:      a.Phone,
		Skills:     a.Skills,
	}
}
