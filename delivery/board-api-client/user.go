package boardapiclient

import (
	"context"
	"net/http"

	"github.com/hosanna-web/webclient/types/entity"
)

// Signup registers a new account. The account stays unusable until an admin
// approves it; logging in before that fails with the pending approval kind.
func (c *Client) Signup(ctx context.Context, req entity.SignupRequest) (string, error) {
	id, err := callJSON[string](ctx, c, http.MethodPost, "/v1/users/signup", nil, req)
	if err != nil {
		return "", err
	}
	return *id, nil
}

// Login establishes the cookie session and returns its owner.
func (c *Client) Login(ctx context.Context, req entity.LoginRequest) (*entity.User, error) {
	return callJSON[entity.User](ctx, c, http.MethodPost, "/v1/users/login", nil, req)
}

// Logout tears the server session down. The cookie becomes worthless either
// way, so callers clear their local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodPost, "/v1/users/logout", nil, nil)
	return err
}

// Me returns the current session owner, or an unauthenticated error when no
// session is established.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	return callJSON[entity.User](ctx, c, http.MethodGet, "/v1/users/me", nil, nil)
}

// PendingUsers lists accounts awaiting approval. Admin only.
func (c *Client) PendingUsers(ctx context.Context) ([]entity.PendingUser, error) {
	users, err := callJSON[[]entity.PendingUser](ctx, c, http.MethodGet, "/v1/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

// ApproveUser authorizes a pending account to log in. Admin only.
func (c *Client) ApproveUser(ctx context.Context, identifier string) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodPost, "/v1/admin/users/"+identifier+"/approve", nil, nil)
	return err
}
