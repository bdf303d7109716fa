package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/config"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
)

// TokenPair bundles the session tokens returned to clients.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterResult is what registration hands back: the pending identity and
// a resend-only token for re-requesting the verification email.
type RegisterResult struct {
	UserID            string
	VerificationToken string
	ExpiresAt         time.Time
}

// AuthService coordinates registration, verification, login, refresh and
// logout. It composes the hasher, token codec, revocation store and
// verification code store with the user identity repository.
type AuthService struct {
	users      repository.UserRepository
	codec      *auth.TokenCodec
	revoked    *auth.RevocationStore
	codes      *auth.VerificationCodeStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuthConfig
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo        repository.UserRepository
	TokenCodec      *auth.TokenCodec
	RevocationStore *auth.RevocationStore
	CodeStore       *auth.VerificationCodeStore
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		codec:      deps.TokenCodec,
		revoked:    deps.RevocationStore,
		codes:      deps.CodeStore,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		cfg:        cfg,
	}
}

// Register creates an unverified customer account, issues a verification
// code and dispatches the verification email as a background effect.
func (s *AuthService) Register(ctx context.Context, email, password string) (*RegisterResult, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.CreateUnverified(ctx, user); err != nil {
		// Concurrent registration can slip past the GetByEmail check; the
		// loser hits the unique index instead.
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	subject := auth.TokenSubject{ID: user.ID, Email: user.Email}
	token, exp, err := s.codec.IssueResendOnly(subject, s.cfg.ResendTokenTTL())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:           user.ID,
		Email:            user.Email,
		VerificationCode: code,
	})

	return &RegisterResult{UserID: user.ID, VerificationToken: token, ExpiresAt: exp}, nil
}

// VerifyEmail checks the 6-digit code, marks the identity verified and
// issues the first session token pair.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stored, ok, err := s.codes.Fetch(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok || stored != code {
		return nil, ErrInvalidVerificationCode
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.codes.Clear(ctx, email); err != nil {
		s.logger.Warn("failed to clear verification code", zap.String("email", email), zap.Error(err))
	}

	return s.issuePair(auth.TokenSubject{ID: user.ID, Email: user.Email})
}

// Login authenticates a verified account and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.EmailVerified {
		return nil, ErrAccountNotVerified
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(auth.TokenSubject{ID: user.ID, Email: user.Email})
}

// Refresh mints a new access token from a refresh token. The same refresh
// token is echoed back; refresh tokens are not rotated on use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !claims.Refresh {
		return nil, auth.ErrInvalidToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, auth.ErrInvalidToken
	}

	access, _, err := s.codec.Issue(claims.User, s.cfg.AccessTokenTTL(), false)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout revokes the refresh token's identifier. The entry lives for the
// token's remaining lifetime, floored at the configured revocation TTL, so
// a revoked refresh token can never outlive its blocklist entry. Access
// tokens issued earlier stay valid until their own expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" {
		return auth.ErrInvalidToken
	}

	ttl := s.cfg.RevocationTTL()
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > ttl {
			ttl = remaining
		}
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

// ResendVerification issues a fresh code for a still-unverified account and
// dispatches the email as a background effect.
func (s *AuthService) ResendVerification(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	code, err := s.codes.Issue(ctx, user.Email)
	if err != nil {
		return err
	}

	s.publish(ctx, events.EventVerificationResent, events.VerificationResentPayload{
		UserID:           user.ID,
		Email:            user.Email,
		VerificationCode: code,
	})
	return nil
}

// CurrentUser resolves the token subject to its profile.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issuePair(subject auth.TokenSubject) (*TokenPair, error) {
	access, _, err := s.codec.Issue(subject, s.cfg.AccessTokenTTL(), false)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.codec.Issue(subject, s.cfg.RefreshTokenTTL(), true)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func usernameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
