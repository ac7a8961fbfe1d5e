// Package session holds the "who is logged in" state as an explicit object
// handed down from the application root, instead of a page wide global. It
// owns the exactly-once session expiry prompt and the redirect-to-login
// side channel.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hosanna-web/webclient/lib/notifier"
	"github.com/hosanna-web/webclient/types/entity"
	types "github.com/hosanna-web/webclient/types/http"
)

// API is the slice of the backend client the manager drives.
type API interface {
	Login(ctx context.Context, req entity.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.User, error)
	SessionExpired() *notifier.Subscription[string]
}

// Manager is the session context object. One per application root.
type Manager struct {
	api API

	mu     sync.Mutex
	user   *entity.User
	active bool

	prompts   *notifier.Topic[string]
	redirects *notifier.Topic[string]

	watch *notifier.Subscription[string]
	done  chan struct{}
}

func New(api API) *Manager {
	m := &Manager{
		api:       api,
		prompts:   notifier.NewTopic[string](1),
		redirects: notifier.NewTopic[string](1),
		watch:     api.SessionExpired(),
		done:      make(chan struct{}),
	}

	// collapse every in-flight detection into at most one prompt per
	// established session
	go func() {
		defer close(m.done)
		for msg := range m.watch.Listen() {
			m.expire(msg)
		}
	}()

	return m
}

func (m *Manager) Close() {
	m.watch.Close()
	<-m.done
}

// Prompts delivers one message per expired session, for the globally
// mounted "please log in again" dialog.
func (m *Manager) Prompts() *notifier.Subscription[string] {
	return m.prompts.Subscribe()
}

// LoginRedirects delivers a message when a protected action ran without any
// established session. Distinct from Prompts: there is no state to clear
// and the user facing copy differs.
func (m *Manager) LoginRedirects() *notifier.Subscription[string] {
	return m.redirects.Subscribe()
}

func (m *Manager) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := m.api.Login(ctx, entity.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.active = true
	m.mu.Unlock()

	return user, nil
}

// Logout clears local state first; the server call failing does not bring
// the session back.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.user = nil
	m.active = false
	m.mu.Unlock()

	if err := m.api.Logout(ctx); err != nil {
		log.Warn().Msgf("logout request failed, local state cleared anyway: %v", err)
		return err
	}
	return nil
}

// Current returns the session owner, if any.
func (m *Manager) Current() (*entity.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// Check asks the backend who owns the cookie session and adopts the answer.
// An unauthenticated answer simply means logged out; it is not an error for
// the caller.
func (m *Manager) Check(ctx context.Context) (*entity.User, error) {
	user, err := m.api.Me(ctx)
	if err != nil {
		var apiErr *types.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == types.KindUnauthenticated {
			m.mu.Lock()
			m.user = nil
			m.active = false
			m.mu.Unlock()
			return nil, nil
		}
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.active = true
	m.mu.Unlock()
	return user, nil
}

// HandleError routes an API error into the session side effects: expiry
// collapses into one prompt, a missing session becomes a login redirect.
// The error itself stays with the caller either way.
func (m *Manager) HandleError(err error) {
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	switch apiErr.Kind {
	case types.KindSessionExpired:
		m.expire(apiErr.Message)
	case types.KindUnauthenticated:
		m.redirects.Broadcast(apiErr.Message)
	}
}

// expire clears the session and activates the prompt, once. A second
// detection of the same lapsed session finds active already false and does
// nothing.
func (m *Manager) expire(message string) {
	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return
	}
	m.active = false
	m.user = nil
	m.mu.Unlock()

	m.prompts.Broadcast(message)
}
