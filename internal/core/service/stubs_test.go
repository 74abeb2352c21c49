package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory user store
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
	writes int

	setTokenErr  error
	beforeRotate func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UserName == user.UserName || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	r.writes++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUserNameOrEmail(_ context.Context, userName, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if (userName != "" && u.UserName == userName) || (email != "" && u.Email == email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetRefreshToken(_ context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setTokenErr != nil {
		return r.setTokenErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	r.writes++
	u.RefreshToken = token
	return nil
}

func (r *stubUserRepo) RotateRefreshToken(_ context.Context, id, current, next string) error {
	if r.beforeRotate != nil {
		r.beforeRotate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.RefreshToken != current {
		return domain.ErrRefreshTokenReused
	}
	r.writes++
	u.RefreshToken = next
	return nil
}

func (r *stubUserRepo) ClearRefreshToken(ctx context.Context, id string) error {
	return r.SetRefreshToken(ctx, id, "")
}

func (r *stubUserRepo) storedToken(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].RefreshToken
}

// ---------------------------------------------------------------------------
// Throttle, denylist, audit
// ---------------------------------------------------------------------------

type stubThrottle struct {
	allow    bool
	allowErr error
	denied   map[string]bool
	checked  []string
	resets   []string
}

func (t *stubThrottle) Allow(_ context.Context, key string) (bool, error) {
	t.checked = append(t.checked, key)
	return t.allow && !t.denied[key], t.allowErr
}

func (t *stubThrottle) Reset(_ context.Context, key string) error {
	t.resets = append(t.resets, key)
	return nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, id string, ttl time.Duration) error {
	d.revoked[id] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := d.revoked[id]
	return ok, nil
}

type stubAudit struct {
	events []domain.AuthEvent
	err    error
}

func (a *stubAudit) Record(_ context.Context, ev *domain.AuthEvent) error {
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, *ev)
	return nil
}

func (a *stubAudit) types() []domain.AuthEventType {
	out := make([]domain.AuthEventType, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Type)
	}
	return out
}

// ---------------------------------------------------------------------------
// Game store
// ---------------------------------------------------------------------------

type stubGameRepo struct {
	byTitle   map[string]*domain.GameRegistration
	existsErr error
	createErr error
	lookups   []string
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{byTitle: make(map[string]*domain.GameRegistration)}
}

func (r *stubGameRepo) ExistsByTitle(_ context.Context, title string) (bool, error) {
	r.lookups = append(r.lookups, title)
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.byTitle[title]
	return ok, nil
}

func (r *stubGameRepo) Create(_ context.Context, g *domain.GameRegistration) (*domain.GameRegistration, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byTitle[g.GameTitle]; ok {
		return nil, domain.ErrGameExists
	}
	c := *g
	c.ID = fmt.Sprintf("game-%d", len(r.byTitle)+1)
	r.byTitle[c.GameTitle] = &c
	out := c
	return &out, nil
}

var errStoreDown = errors.New("store unavailable")
