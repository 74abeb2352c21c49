package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/api/metrics"
	"github.com/eduplay/platform-api/internal/core/ports"
)

// GameHandler handles physical game registration.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

// Register handles POST {prefix}/register-game.
//
// @Summary      Register a physical game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        body  body      registerGameRequest  true  "Game details"
// @Success      201   {object}  Response{data=domain.GameRegistration}
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /register-game [post]
func (h *GameHandler) Register(c echo.Context) error {
	var req registerGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.GamesRegisteredTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	game, err := h.service.Register(c.Request().Context(), toGameInput(req))
	metrics.GamesRegisteredTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, game, "Game registered Successfully")
}

func toGameInput(r registerGameRequest) ports.RegisterGameInput {
	return ports.RegisterGameInput{
		GameTitle:         r.GameTitle,
		Age:               r.Age,
		Gender:            r.Gender,
		Category:          r.Category,
		Subcategory:       r.Subcategory,
		HowToPlay:         r.HowToPlay,
		BenefitsOfPlaying: r.BenefitsOfPlaying,
		ItemsRequired:     r.ItemsRequired,
		URL:               r.URL,
		Score:             r.Score,
		Level:             r.Level,
	}
}
