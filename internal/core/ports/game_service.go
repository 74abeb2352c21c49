package ports

import (
	"context"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// RegisterGameInput carries the descriptive fields of a physical game.
type RegisterGameInput struct {
	GameTitle         string `json:"gametitle"         validate:"notblank"`
	Age               string `json:"age"               validate:"notblank"`
	Gender            string `json:"gender"            validate:"notblank"`
	Category          string `json:"category"          validate:"notblank"`
	Subcategory       string `json:"subcategory"       validate:"notblank"`
	HowToPlay         string `json:"howtoplay"         validate:"notblank"`
	BenefitsOfPlaying string `json:"benefitsofplaying" validate:"notblank"`
	ItemsRequired     string `json:"itemsrequied"      validate:"notblank"`
	URL               string `json:"url"               validate:"notblank"`
	Score             string `json:"score"             validate:"notblank"`
	Level             string `json:"level"             validate:"notblank"`
}

type GameService interface {
	Register(ctx context.Context, in RegisterGameInput) (*domain.GameRegistration, error)
}
