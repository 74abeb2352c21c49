package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
	"github.com/eduplay/platform-api/internal/pkg/validation"
)

// SessionDeps groups the collaborators of SessionService. Throttle, Denylist
// and Audit are optional; nil values disable the corresponding feature.
type SessionDeps struct {
	Users    ports.UserRepository
	Tokens   ports.TokenIssuer
	Hasher   ports.PasswordHasher
	Throttle ports.LoginThrottle
	Denylist ports.TokenDenylist
	Audit    ports.AuditRepository
}

// SessionService implements registration, login, logout, refresh-token
// rotation and access-token authentication.
type SessionService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	hasher   ports.PasswordHasher
	throttle ports.LoginThrottle
	denylist ports.TokenDenylist
	audit    ports.AuditRepository
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

func NewSessionService(deps SessionDeps, log zerolog.Logger) *SessionService {
	s := &SessionService{
		users:    deps.Users,
		tokens:   deps.Tokens,
		hasher:   deps.Hasher,
		throttle: deps.Throttle,
		denylist: deps.Denylist,
		audit:    deps.Audit,
		validate: validation.New(),
		log:      log,
		now:      time.Now,
	}
	if s.throttle == nil {
		s.throttle = noopThrottle{}
	}
	if s.denylist == nil {
		s.denylist = noopDenylist{}
	}
	if s.audit == nil {
		s.audit = noopAudit{}
	}
	return s
}

// Register creates a new account and returns it without credential fields.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if err := validation.Struct(s.validate, in, domain.ErrFieldsRequired.Message); err != nil {
		return nil, err
	}

	userName := normalizeIdentifier(in.UserName)
	email := normalizeIdentifier(in.Email)

	existing, err := s.users.FindByUserNameOrEmail(ctx, userName, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, s.internal("something went wrong while registering the user", "find existing user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.Validation("password is too long", "password must be at most 72 bytes")
		}
		return nil, s.internal("something went wrong while registering the user", "hash password", err)
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		UserName:     userName,
		Email:        email,
		PhoneNumber:  in.PhoneNumber,
		EmployeeID:   in.EmployeeID,
		CreatorName:  in.CreatorName,
		Profession:   in.Profession,
		Biography:    in.Biography,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, s.internal("something went wrong while registering the user", "create user", err)
	}

	stored, err := s.users.FindByID(ctx, created.ID)
	if err != nil {
		return nil, s.internal("something went wrong while registering the user", "reload user", err, "user_id", created.ID)
	}

	s.record(ctx, domain.AuthEvent{UserID: stored.ID, Type: domain.EventRegistered})
	s.log.Info().Str("user_id", stored.ID).Str("user_name", stored.UserName).Msg("user registered")

	return stored.Sanitized(), nil
}

// Login verifies the credentials and issues a new token pair, replacing any
// refresh token stored for the user.
func (s *SessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	userName := normalizeIdentifier(in.UserName)
	email := normalizeIdentifier(in.Email)
	if userName == "" && email == "" {
		return nil, domain.ErrIdentifierRequired
	}

	key := userName
	if key == "" {
		key = email
	}
	limitKey := throttleKey(key, in.ClientIP)

	allowed, err := s.throttle.Allow(ctx, limitKey)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", key).Msg("login throttle check failed, allowing attempt")
	} else if !allowed {
		s.record(ctx, domain.AuthEvent{Identifier: key, Type: domain.EventLoginFailed, Reason: "throttled"})
		return nil, domain.ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByUserNameOrEmail(ctx, userName, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(ctx, domain.AuthEvent{Identifier: key, Type: domain.EventLoginFailed, Reason: "unknown user"})
			return nil, domain.ErrUserNotFound
		}
		return nil, s.internal("something went wrong while logging in", "find user", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		s.record(ctx, domain.AuthEvent{UserID: user.ID, Identifier: key, Type: domain.EventLoginFailed, Reason: "bad password"})
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user, "")
	if err != nil {
		return nil, err
	}

	if err := s.throttle.Reset(ctx, limitKey); err != nil {
		s.log.Warn().Err(err).Str("identifier", key).Msg("failed to reset login throttle")
	}

	s.record(ctx, domain.AuthEvent{UserID: user.ID, Type: domain.EventLoginSucceeded})
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{User: user.Sanitized(), Tokens: *pair}, nil
}

// Logout drops the stored refresh token of the authenticated user and
// revokes the access token used for the request until it expires.
func (s *SessionService) Logout(ctx context.Context, principal *ports.Principal) error {
	if principal == nil || principal.User == nil {
		return domain.ErrUnauthorizedRequest
	}
	userID := principal.User.ID

	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		return s.internal("something went wrong while logging out", "clear refresh token", err, "user_id", userID)
	}

	if principal.TokenID != "" {
		if ttl := principal.ExpiresAt.Sub(s.now()); ttl > 0 {
			if err := s.denylist.Revoke(ctx, principal.TokenID, ttl); err != nil {
				s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to revoke access token")
			}
		}
	}

	s.record(ctx, domain.AuthEvent{UserID: userID, Type: domain.EventLogout})
	s.log.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

// Refresh exchanges the user's current refresh token for a new pair. A token
// that verifies but is not the one stored for the user is rejected, so a
// rotated-out token cannot be replayed.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domain.ErrUnauthorizedRequest
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.record(ctx, domain.AuthEvent{Type: domain.EventRefreshRejected, Reason: err.Error()})
		return nil, domain.Unauthorized(err.Error(), err)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(ctx, domain.AuthEvent{UserID: claims.UserID, Type: domain.EventRefreshRejected, Reason: "unknown user"})
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, s.internal("something went wrong while refreshing the session", "find user", err, "user_id", claims.UserID)
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(refreshToken), []byte(user.RefreshToken)) != 1 {
		s.record(ctx, domain.AuthEvent{UserID: user.ID, Type: domain.EventRefreshRejected, Reason: "stale token"})
		s.log.Warn().Str("user_id", user.ID).Msg("stale refresh token presented")
		return nil, domain.ErrRefreshTokenReused
	}

	pair, err := s.issuePair(ctx, user, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenReused) {
			s.record(ctx, domain.AuthEvent{UserID: user.ID, Type: domain.EventRefreshRejected, Reason: "concurrent rotation"})
		}
		return nil, err
	}

	s.record(ctx, domain.AuthEvent{UserID: user.ID, Type: domain.EventTokenRefreshed})
	return pair, nil
}

// Authenticate resolves the caller behind an access token.
func (s *SessionService) Authenticate(ctx context.Context, accessToken string) (*ports.Principal, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domain.ErrUnauthorizedRequest
	}

	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, domain.Unauthorized(err.Error(), err)
	}

	if claims.TokenID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("denylist check failed, accepting token")
		} else if revoked {
			return nil, domain.ErrInvalidAccessToken
		}
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidAccessToken
		}
		return nil, s.internal("something went wrong while authenticating", "find user", err, "user_id", claims.UserID)
	}

	return &ports.Principal{
		User:      user.Sanitized(),
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// issuePair signs a new access/refresh pair and stores the refresh token as
// the user's only valid one. A non-empty previous makes the store swap
// conditional on previous still being current.
func (s *SessionService) issuePair(ctx context.Context, user *domain.User, previous string) (*ports.TokenPair, error) {
	const msg = "something went wrong while generating refresh and access token"

	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, s.internal(msg, "issue access token", err, "user_id", user.ID)
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, s.internal(msg, "issue refresh token", err, "user_id", user.ID)
	}

	if previous == "" {
		err = s.users.SetRefreshToken(ctx, user.ID, refresh)
	} else {
		err = s.users.RotateRefreshToken(ctx, user.ID, previous, refresh)
	}
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenReused) {
			return nil, domain.ErrRefreshTokenReused
		}
		return nil, s.internal(msg, "store refresh token", err, "user_id", user.ID)
	}
	user.RefreshToken = refresh

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *SessionService) internal(msg, operation string, err error, kv ...any) error {
	return domain.Internal(msg, oops.
		In("session").
		With("operation", operation).
		With(kv...).
		Wrap(err))
}

func (s *SessionService) record(ctx context.Context, ev domain.AuthEvent) {
	ev.OccurredAt = s.now().UTC()
	if err := s.audit.Record(ctx, &ev); err != nil {
		s.log.Warn().Err(err).Str("event", string(ev.Type)).Str("user_id", ev.UserID).Msg("failed to record auth event")
	}
}

// throttleKey scopes login attempts to an identifier and the client address.
func throttleKey(identifier, clientIP string) string {
	if clientIP == "" {
		return identifier
	}
	return identifier + "|" + clientIP
}

func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type noopThrottle struct{}

func (noopThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopThrottle) Reset(context.Context, string) error         { return nil }

type noopDenylist struct{}

func (noopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }
func (noopDenylist) IsRevoked(context.Context, string) (bool, error)     { return false, nil }

type noopAudit struct{}

func (noopAudit) Record(context.Context, *domain.AuthEvent) error { return nil }
