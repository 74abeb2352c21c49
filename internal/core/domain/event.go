package domain

import "time"

// AuthEventType names a session lifecycle step recorded in the audit trail.
type AuthEventType string

const (
	EventRegistered      AuthEventType = "registered"
	EventLoginSucceeded  AuthEventType = "login_succeeded"
	EventLoginFailed     AuthEventType = "login_failed"
	EventLogout          AuthEventType = "logout"
	EventTokenRefreshed  AuthEventType = "token_refreshed"
	EventRefreshRejected AuthEventType = "refresh_rejected"
)

// AuthEvent is a single entry of the authentication audit trail.
type AuthEvent struct {
	UserID     string
	Identifier string // userName or email as supplied, when no user is known
	Type       AuthEventType
	Reason     string
	OccurredAt time.Time
}
