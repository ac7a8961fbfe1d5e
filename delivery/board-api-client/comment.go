package boardapiclient

import (
	"context"
	"net/http"
)

type commentPayload struct {
	Content                 string `json:"content"`
	ParentCommentIdentifier string `json:"parentCommentIdentifier,omitempty"`
}

// CreateComment posts a comment on a board. parentIdentifier selects the
// comment being replied to, at any depth; empty means top level. The caller
// refetches the board detail afterwards, there is no local splice.
func (c *Client) CreateComment(ctx context.Context, boardIdentifier, parentIdentifier, content string) error {
	payload := commentPayload{
		Content:                 content,
		ParentCommentIdentifier: parentIdentifier,
	}
	_, err := callJSON[struct{}](ctx, c, http.MethodPost, "/v1/boards/"+boardIdentifier+"/comments", nil, payload)
	return err
}

func (c *Client) UpdateComment(ctx context.Context, identifier, content string) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodPut, "/v1/comments/"+identifier, nil, commentPayload{Content: content})
	return err
}

func (c *Client) DeleteComment(ctx context.Context, identifier string) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodDelete, "/v1/comments/"+identifier, nil, nil)
	return err
}
