package ports

import (
	"context"
	"time"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// RegisterUserInput carries the identity and profile fields of a new account.
// Every field is mandatory and must contain a non-whitespace character.
type RegisterUserInput struct {
	UserName    string `json:"userName"    validate:"notblank"`
	Password    string `json:"password"    validate:"notblank"`
	Email       string `json:"email"       validate:"notblank"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	EmployeeID  string `json:"employeeId"  validate:"notblank"`
	CreatorName string `json:"creatorName" validate:"notblank"`
	Profession  string `json:"profession"  validate:"notblank"`
	Biography   string `json:"biography"   validate:"notblank"`
}

// LoginInput identifies a user by userName or email. ClientIP scopes the
// login throttle so one client cannot lock an account for everyone.
type LoginInput struct {
	UserName string
	Email    string
	Password string
	ClientIP string
}

// TokenPair is a freshly issued access/refresh credential pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	User      *domain.User
	TokenID   string
	ExpiresAt time.Time
}

// SessionService covers the account and session lifecycle.
type SessionService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, principal *Principal) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (*Principal, error)
}
