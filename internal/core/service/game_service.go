package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
	"github.com/eduplay/platform-api/internal/pkg/validation"
)

// GameService registers physical games.
type GameService struct {
	repo     ports.GameRepository
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

func NewGameService(repo ports.GameRepository, log zerolog.Logger) *GameService {
	return &GameService{repo: repo, validate: validation.New(), log: log, now: time.Now}
}

// Register stores a new game. Titles are unique within the game collection.
func (s *GameService) Register(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error) {
	if err := validation.Struct(s.validate, in, domain.ErrFieldsRequired.Message); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, in.GameTitle)
	if err != nil {
		return nil, s.internal("check title", err, in.GameTitle)
	}
	if exists {
		return nil, domain.ErrGameExists
	}

	game, err := s.repo.Create(ctx, &domain.GameRegistration{
		GameTitle:         in.GameTitle,
		Age:               in.Age,
		Gender:            in.Gender,
		Category:          in.Category,
		Subcategory:       in.Subcategory,
		HowToPlay:         in.HowToPlay,
		BenefitsOfPlaying: in.BenefitsOfPlaying,
		ItemsRequired:     in.ItemsRequired,
		URL:               in.URL,
		Score:             in.Score,
		Level:             in.Level,
		CreatedAt:         s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrGameExists) {
			return nil, domain.ErrGameExists
		}
		return nil, s.internal("create game", err, in.GameTitle)
	}

	s.log.Info().Str("game_id", game.ID).Str("title", game.GameTitle).Msg("game registered")
	return game, nil
}

func (s *GameService) internal(operation string, err error, title string) error {
	return domain.Internal("something went wrong while registering the game", oops.
		In("game").
		With("operation", operation, "title", title).
		Wrap(err))
}
