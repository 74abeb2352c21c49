package ports

import (
	"context"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// AuditRepository persists the authentication audit trail.
type AuditRepository interface {
	Record(ctx context.Context, event *domain.AuthEvent) error
}
