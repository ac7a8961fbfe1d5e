package boardapiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hosanna-web/webclient/lib/attachment"
	"github.com/hosanna-web/webclient/types/entity"
)

// ListBoards fetches one page of a category.
func (c *Client) ListBoards(ctx context.Context, category entity.BoardCategory, page, size int) (*entity.Page[entity.BoardSummary], error) {
	query := url.Values{}
	query.Set("category", string(category))
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	return callJSON[entity.Page[entity.BoardSummary]](ctx, c, http.MethodGet, "/v1/boards", query, nil)
}

// GetBoard fetches a post detail, including its comment forest.
func (c *Client) GetBoard(ctx context.Context, identifier string) (*entity.BoardDetail, error) {
	return callJSON[entity.BoardDetail](ctx, c, http.MethodGet, "/v1/boards/"+identifier, nil, nil)
}

// BoardCreate is a new post. Images go up in display order; files carry no
// order.
type BoardCreate struct {
	Category entity.BoardCategory
	Title    string
	Content  string
	Images   []attachment.File
	Files    []attachment.File
}

// CreateBoard submits a new post as one multipart request and returns the
// new post identifier.
func (c *Client) CreateBoard(ctx context.Context, req BoardCreate) (string, error) {
	f := &form{}
	f.addField("category", string(req.Category))
	f.addField("title", req.Title)
	f.addField("content", req.Content)
	f.addFiles("newImages", req.Images)
	f.addFiles("newFiles", req.Files)

	id, err := callMultipart[string](ctx, c, http.MethodPost, "/v1/boards", f)
	if err != nil {
		return "", err
	}
	return *id, nil
}

// BoardUpdate carries the reconciled attachment state of an edited post.
// Images use the keep/new shape: a kept identifier missing from the list is
// the deletion signal. Files use the explicit delete list since they have no
// display order. Empty groups are left nil by the encoder so the backend
// sees "field absent" (no-op), not "present but empty" (clear everything).
type BoardUpdate struct {
	Title   string
	Content string
	Images  attachment.KeepNew
	Files   attachment.KeepDelete
}

func (c *Client) UpdateBoard(ctx context.Context, identifier string, req BoardUpdate) error {
	f := &form{}
	f.addField("title", req.Title)
	f.addField("content", req.Content)
	f.addKeepNew(req.Images, "keepImageIdentifiers", "keepImageOrders", "newImages", "newImageOrders")
	f.addKeepDelete(req.Files, "deleteFileIdentifiers", "newFiles")

	_, err := callMultipart[struct{}](ctx, c, http.MethodPut, "/v1/boards/"+identifier, f)
	return err
}

func (c *Client) DeleteBoard(ctx context.Context, identifier string) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodDelete, "/v1/boards/"+identifier, nil, nil)
	return err
}
