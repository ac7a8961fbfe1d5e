// Package boardapiclient is the typed HTTP client for the site backend.
// Every endpoint speaks the {code, message, data} envelope; the envelope,
// never the transport status alone, decides success. The session rides on a
// cookie held in the client's jar.
package boardapiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hosanna-web/webclient/lib/notifier"
	types "github.com/hosanna-web/webclient/types/http"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
	expiry  *notifier.Topic[string]
}

type Option func(*Client)

// WithHTTPClient swaps the transport. The caller keeps responsibility for
// attaching a cookie jar when doing so.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		expiry: notifier.NewTopic[string](1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SessionExpired subscribes to the client-wide expiry broadcast. Every
// request that runs into an expired session publishes here in addition to
// returning the error to its own caller.
func (c *Client) SessionExpired() *notifier.Subscription[string] {
	return c.expiry.Subscribe()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// roundTrip performs one request, fire-once, no retries.
func (c *Client) roundTrip(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, &types.APIError{
			Kind:    types.KindUnknown,
			Message: "request failed: " + err.Error(),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &types.APIError{
			Kind:       types.KindUnknown,
			HTTPStatus: resp.StatusCode,
			Message:    "read body: " + err.Error(),
		}
	}
	return body, resp.StatusCode, nil
}

// parse decodes the envelope and classifies failure. A body that is not an
// envelope at all is its own error kind carrying the raw transport status.
func (c *Client) parse(body []byte, status int) (*types.Response, error) {
	var env types.Response
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &types.APIError{
			Kind:       types.KindUnparseable,
			HTTPStatus: status,
			Message:    "unparseable response: " + err.Error(),
		}
	}

	if env.IsSuccess() && status >= 200 && status <= 299 {
		return &env, nil
	}

	apiErr := &types.APIError{
		Kind:       types.KindOfCode(env.Code),
		Code:       env.Code,
		HTTPStatus: status,
		Message:    env.Message,
	}

	switch apiErr.Kind {
	case types.KindValidation:
		// data carries the human readable messages as a string array
		if err := json.Unmarshal(env.Data, &apiErr.Validation); err != nil {
			log.Debug().Msgf("validation payload not a string array: %v", err)
		}
	case types.KindSessionExpired:
		c.expiry.Broadcast(env.Message)
	}

	return nil, apiErr
}

// callJSON round-trips a JSON framed request and decodes data into T.
func callJSON[T any](ctx context.Context, c *Client, method, path string, query url.Values, payload any) (*T, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &types.APIError{Kind: types.KindUnknown, Message: "marshal request: " + err.Error()}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, &types.APIError{Kind: types.KindUnknown, Message: "new request: " + err.Error()}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return finish[T](c, req)
}

// callMultipart round-trips a multipart framed request. The content type
// comes from the form writer's boundary; nothing else is set so the session
// cookie still flows through the jar.
func callMultipart[T any](ctx context.Context, c *Client, method, path string, form *form) (*T, error) {
	body, contentType := form.stream()

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), body)
	if err != nil {
		return nil, &types.APIError{Kind: types.KindUnknown, Message: "new request: " + err.Error()}
	}
	req.Header.Set("Content-Type", contentType)

	return finish[T](c, req)
}

func finish[T any](c *Client, req *http.Request) (*T, error) {
	raw, status, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}

	env, err := c.parse(raw, status)
	if err != nil {
		return nil, err
	}

	// success with no payload is legal for pure mutations
	var out T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &types.APIError{
			Kind:       types.KindUnparseable,
			Code:       env.Code,
			HTTPStatus: status,
			Message:    "decode data: " + err.Error(),
		}
	}
	return &out, nil
}
