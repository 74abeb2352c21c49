package ports

import (
	"context"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// GameRepository defines persistence operations for physical game registrations.
type GameRepository interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	// Create inserts the registration. A title collision on the unique index
	// is reported as domain.ErrGameExists.
	Create(ctx context.Context, game *domain.GameRegistration) (*domain.GameRegistration, error)
}
