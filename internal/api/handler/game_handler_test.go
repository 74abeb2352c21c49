package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

const validGameBody = `{"gametitle":"Hopscotch","age":"5-8","gender":"any","category":"outdoor","subcategory":"jumping","howtoplay":"hop","benefitsofplaying":"balance","itemsrequied":"chalk","url":"https://example.com/h","score":"10","level":"easy"}`

func TestGameHandler_Register_Success(t *testing.T) {
	stub := &stubGameService{
		registerFn: func(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error) {
			if in.GameTitle != "Hopscotch" || in.ItemsRequired != "chalk" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.GameRegistration{ID: "g1", GameTitle: in.GameTitle, ItemsRequired: in.ItemsRequired}, nil
		},
	}
	h := NewGameHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/register-game", validGameBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	game, ok := resp["data"].(map[string]any)
	if !ok || game["_id"] != "g1" || game["gametitle"] != "Hopscotch" || game["itemsrequied"] != "chalk" {
		t.Fatalf("expected created game in data, got %+v", resp["data"])
	}
}

func TestGameHandler_Register_MissingField(t *testing.T) {
	stub := &stubGameService{
		registerFn: func(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewGameHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/register-game", `{"gametitle":"Hopscotch"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrFieldsRequired) {
		t.Fatalf("expected fields required, got %v", err)
	}
}

func TestGameHandler_Register_Duplicate(t *testing.T) {
	stub := &stubGameService{
		registerFn: func(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error) {
			return nil, domain.ErrGameExists
		},
	}
	h := NewGameHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/register-game", validGameBody)
	if err := h.Register(c); !errors.Is(err, domain.ErrGameExists) {
		t.Fatalf("expected game exists, got %v", err)
	}
}
