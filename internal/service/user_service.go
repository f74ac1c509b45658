package service

import (
	"context"
	"errors"
	"strings"

	"game-catalog/internal/auth"
	"game-catalog/internal/domain"
	"game-catalog/internal/repository"
)

// MinPasswordLength is the registration password policy minimum.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials covers bad logins and bad, expired or orphaned
	// tokens. Callers get no finer-grained signal, so usernames cannot be
	// enumerated through login responses.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrPasswordTooShort is returned when a registration password is below policy.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrUserDisabled is returned by the active-user gate for disabled accounts.
	ErrUserDisabled = errors.New("user is disabled")
)

// UserService implements registration, login and token-based user resolution.
type UserService interface {
	Register(ctx context.Context, username, password, email, fullName string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*domain.Account, error)
	ActiveUser(ctx context.Context, token string) (*domain.Account, error)
}

type userService struct {
	accounts repository.AccountRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

func NewUserService(accounts repository.AccountRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) UserService {
	return &userService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new account with a hashed password. No token is issued;
// the caller logs in separately.
func (s *userService) Register(ctx context.Context, username, password, email, fullName string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		Email:        strings.TrimSpace(email),
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		Disabled:     false,
	}

	if _, err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeAccount(account), nil
}

// Login verifies credentials and mints a bearer token for the username.
// Unknown usernames and wrong passwords produce the same error. Disabled
// accounts may still log in; only ActiveUser rejects them.
func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(account.Username)
}

// CurrentUser resolves a token back to its account. Verification failures
// and subjects whose account has since vanished both yield
// ErrInvalidCredentials.
func (s *userService) CurrentUser(ctx context.Context, token string) (*domain.Account, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return sanitizeAccount(account), nil
}

// ActiveUser is the guard for protected routes: CurrentUser plus the
// disabled-account gate.
func (s *userService) ActiveUser(ctx context.Context, token string) (*domain.Account, error) {
	account, err := s.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if account.Disabled {
		return nil, ErrUserDisabled
	}
	return account, nil
}

func sanitizeAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	return &domain.Account{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		FullName:  account.FullName,
		Disabled:  account.Disabled,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
