package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	pkgauth "github.com/drevmart/drevmart-backend/pkg/auth"
	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
	"github.com/drevmart/drevmart-backend/pkg/security"
)

// RoleAuthenticated is the only role the storefront hands out.
const RoleAuthenticated = "authenticated"

// Customer-facing messages.
const (
	MsgRegistered     = "Регистрация успешна"
	MsgProfileUpdated = "Профиль обновлен"
	MsgAccountDeleted = "Аккаунт удален"
	MsgLoggedOut      = "Выход выполнен"
	MsgBadCredentials = "Неверный email или пароль"
)

// User is the storefront account as returned to the client.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is the login result: a signed JWT plus the account.
type Session struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type account struct {
	user         User
	passwordHash string
}

// Service keeps accounts in memory and signs real tokens, so the rest of the
// stack authenticates exactly as it will against the production identity
// provider.
type Service struct {
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
	now         func() time.Time

	mu      sync.Mutex
	byEmail map[string]*account
	byID    map[int]*account
	nextID  int
}

func NewService(jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) *Service {
	return &Service{
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		logg:        logg,
		now:         time.Now,
		byEmail:     make(map[string]*account),
		byID:        make(map[int]*account),
		nextID:      1,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Emails are unique.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return User{}, errors.New(errors.CodeValidation, "email и пароль обязательны")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return User{}, errors.Wrap(errors.CodeInternal, err, "hashing password")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = email
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return User{}, errors.New(errors.CodeConflict, "Пользователь с таким email уже существует")
	}

	acct := &account{
		user: User{
			ID:       s.nextID,
			Username: username,
			Email:    email,
			Role:     RoleAuthenticated,
		},
		passwordHash: hash,
	}
	s.nextID++
	s.byEmail[email] = acct
	s.byID[acct.user.ID] = acct

	s.logg.Info(s.logg.WithUserID(ctx, email), "account registered")
	return acct.user, nil
}

// Login verifies credentials and mints an access token.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	acct, exists := s.byEmail[email]
	s.mu.Unlock()

	if !exists {
		return Session{}, errors.New(errors.CodeUnauthorized, MsgBadCredentials)
	}

	ok, err := security.VerifyPassword(password, acct.passwordHash)
	if err != nil {
		return Session{}, errors.Wrap(errors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return Session{}, errors.New(errors.CodeUnauthorized, MsgBadCredentials)
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: acct.user.ID,
		Email:  acct.user.Email,
		Role:   acct.user.Role,
	})
	if err != nil {
		return Session{}, errors.Wrap(errors.CodeInternal, err, "minting access token")
	}

	s.logg.Info(s.logg.WithUserID(ctx, email), "user logged in")
	return Session{JWT: token, User: acct.user}, nil
}

// CheckAuth resolves the account behind verified claims.
func (s *Service) CheckAuth(ctx context.Context, claims *pkgauth.AccessTokenClaims) (User, error) {
	return s.CheckAuthByID(ctx, claims.UserID)
}

// CheckAuthByID resolves the account by its id. Tokens for deleted accounts
// stop working here.
func (s *Service) CheckAuthByID(ctx context.Context, userID int) (User, error) {
	s.mu.Lock()
	acct, exists := s.byID[userID]
	s.mu.Unlock()

	if !exists {
		return User{}, errors.New(errors.CodeUnauthorized, "Необходима авторизация")
	}
	return acct.user, nil
}

// UpdateProfile changes the account's display name.
func (s *Service) UpdateProfile(ctx context.Context, userID int, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, errors.New(errors.CodeValidation, "имя пользователя обязательно")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byID[userID]
	if !exists {
		return User{}, errors.New(errors.CodeNotFound, "Пользователь не найден")
	}
	acct.user.Username = username
	return acct.user, nil
}

// DeleteAccount removes the account entirely.
func (s *Service) DeleteAccount(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byID[userID]
	if !exists {
		return errors.New(errors.CodeNotFound, "Пользователь не найден")
	}
	delete(s.byID, userID)
	delete(s.byEmail, acct.user.Email)
	return nil
}

// Logout exists for API symmetry. Tokens are stateless, so the client simply
// discards its copy.
func (s *Service) Logout(ctx context.Context) string {
	return MsgLoggedOut
}
