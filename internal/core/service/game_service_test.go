package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

func gameInput(title string) ports.RegisterGameInput {
	return ports.RegisterGameInput{
		GameTitle:         title,
		Age:               "6-8",
		Gender:            "any",
		Category:          "outdoor",
		Subcategory:       "running",
		HowToPlay:         "One player chases the others.",
		BenefitsOfPlaying: "Builds stamina.",
		ItemsRequired:     "none",
		URL:               "https://cdn.example.com/tag.mp4",
		Score:             "10",
		Level:             "easy",
	}
}

func TestGameService_Register_ReturnsCreatedRecord(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	game, err := svc.Register(context.Background(), gameInput("Tag"))

	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "Tag", game.GameTitle)
	assert.Equal(t, "none", game.ItemsRequired)
	assert.False(t, game.CreatedAt.IsZero())
}

// The duplicate check must consult the game store, not the user store.
func TestGameService_Register_DuplicateTitleCheckedInGameStore(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	_, err := svc.Register(context.Background(), gameInput("Tag"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), gameInput("Tag"))

	requireKind(t, err, domain.KindConflict)
	assert.ErrorIs(t, err, domain.ErrGameExists)
	assert.Equal(t, []string{"Tag", "Tag"}, repo.lookups)
}

func TestGameService_Register_BlankField(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())
	in := gameInput("Tag")
	in.HowToPlay = "   "

	_, err := svc.Register(context.Background(), in)

	requireKind(t, err, domain.KindValidation)
	assert.Empty(t, repo.lookups)
	assert.Empty(t, repo.byTitle)
}

func TestGameService_Register_StoreFailure(t *testing.T) {
	repo := newStubGameRepo()
	repo.existsErr = errStoreDown
	svc := NewGameService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), gameInput("Tag"))

	requireKind(t, err, domain.KindInternal)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestGameService_Register_InsertRace(t *testing.T) {
	repo := newStubGameRepo()
	repo.createErr = domain.ErrGameExists
	svc := NewGameService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), gameInput("Tag"))

	assert.ErrorIs(t, err, domain.ErrGameExists)
}
