package boardapiclient

import (
	"context"
	"net/http"

	"github.com/hosanna-web/webclient/lib/attachment"
	"github.com/hosanna-web/webclient/types/entity"
)

// HomeInfo fetches the public home aggregate (banners plus the next week
// event notice).
func (c *Client) HomeInfo(ctx context.Context) (*entity.HomeInfo, error) {
	return callJSON[entity.HomeInfo](ctx, c, http.MethodGet, "/v1/home", nil, nil)
}

// BannerConfig fetches the banner set for the admin editor.
func (c *Client) BannerConfig(ctx context.Context) (*entity.BannerConfig, error) {
	return callJSON[entity.BannerConfig](ctx, c, http.MethodGet, "/v1/admin/banners", nil, nil)
}

// UpdateBannerConfig replaces the banner set with the reconciled state.
// Unlike board updates this endpoint is full-state: both pairs always go on
// the wire, empty or not, so callers encode without OmitWhenEmpty.
func (c *Client) UpdateBannerConfig(ctx context.Context, banners attachment.KeepNew) error {
	f := &form{}
	f.addKeepNew(banners, "keepBannerIdentifiers", "keepBannerOrders", "newImages", "newImageOrders")

	_, err := callMultipart[struct{}](ctx, c, http.MethodPut, "/v1/admin/banners", f)
	return err
}

// UpdateNextWeekEvent sets the home notice content. Admin only.
func (c *Client) UpdateNextWeekEvent(ctx context.Context, content string) error {
	_, err := callJSON[struct{}](ctx, c, http.MethodPut, "/v1/admin/next-week-event", nil, entity.NextWeekEvent{Content: content})
	return err
}
