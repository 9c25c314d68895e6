package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/common"
)

// Resource describes one REST resource family under /admin.
type Resource struct {
	Name string
	Path string
	// ListKey is the data field holding the page items.
	ListKey string
	// ItemKey is the data field holding a single item, when wrapped.
	ItemKey string
	// Filters are the categorical query parameters the list endpoint accepts.
	Filters []string
}

var (
	UsersResource = Resource{
		Name: "users", Path: "/admin/users", ListKey: "users", ItemKey: "user",
		Filters: []string{"role", "isActive"},
	}
	QRCodesResource = Resource{
		Name: "qrCodes", Path: "/admin/qr-codes", ListKey: "qrCodes", ItemKey: "qrCode",
		Filters: []string{"isActive"},
	}
	LandingPagesResource = Resource{
		Name: "landingPages", Path: "/admin/landing-pages", ListKey: "landingPages", ItemKey: "landingPage",
		Filters: []string{"isActive"},
	}
)

// Collection is the paged CRUD surface of one resource family.
type Collection[T models.Entity, P models.Patch] struct {
	c   *HTTPClient
	res Resource
}

func NewCollection[T models.Entity, P models.Patch](c *HTTPClient, res Resource) *Collection[T, P] {
	return &Collection[T, P]{c: c, res: res}
}

func (c *HTTPClient) Users() *Collection[models.User, models.UserPatch] {
	return NewCollection[models.User, models.UserPatch](c, UsersResource)
}

func (c *HTTPClient) QRCodes() *Collection[models.QRCode, models.QRCodePatch] {
	return NewCollection[models.QRCode, models.QRCodePatch](c, QRCodesResource)
}

func (c *HTTPClient) LandingPages() *Collection[models.LandingPage, models.LandingPagePatch] {
	return NewCollection[models.LandingPage, models.LandingPagePatch](c, LandingPagesResource)
}

func (col *Collection[T, P]) Resource() Resource {
	return col.res
}

// listQuery encodes criteria. Empty search and filter values are omitted so
// they do not over-filter on the server.
func listQuery(crit models.Criteria) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(crit.Page))
	limit := crit.Limit
	if limit < 1 {
		limit = models.DefaultPageSize
	}
	q.Set("limit", strconv.Itoa(limit))
	if crit.Search != "" {
		q.Set("search", crit.Search)
	}
	for k, v := range crit.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// List fetches one page. crit.Page must be at least 1.
func (col *Collection[T, P]) List(ctx context.Context, crit models.Criteria) (models.PagedResult[T], error) {
	if crit.Page < 1 {
		return models.PagedResult[T]{}, fmt.Errorf("%w: page %d is out of range", common.ErrValidation, crit.Page)
	}

	var data map[string]json.RawMessage
	if err := col.c.call(ctx, http.MethodGet, col.res.Path, listQuery(crit), nil, true, &data); err != nil {
		return models.PagedResult[T]{}, fmt.Errorf("list %s: %w", col.res.Name, err)
	}

	result := models.PagedResult[T]{Page: crit.Page, TotalPages: 1, Items: []T{}}
	if raw, ok := data[col.res.ListKey]; ok {
		if err := json.Unmarshal(raw, &result.Items); err != nil {
			return models.PagedResult[T]{}, fmt.Errorf("list %s: %w", col.res.Name,
				&APIError{Kind: common.ErrServer, Message: "malformed " + col.res.ListKey})
		}
		if result.Items == nil {
			result.Items = []T{}
		}
	}
	if raw, ok := data["totalPages"]; ok {
		if err := json.Unmarshal(raw, &result.TotalPages); err != nil {
			return models.PagedResult[T]{}, fmt.Errorf("list %s: %w", col.res.Name,
				&APIError{Kind: common.ErrServer, Message: "malformed totalPages"})
		}
	}
	return result, nil
}

// decodeItem accepts {"<itemKey>": {...}} as well as the bare item.
func (col *Collection[T, P]) decodeItem(data json.RawMessage) (T, error) {
	var item T
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if raw, ok := wrapped[col.res.ItemKey]; ok {
			data = raw
		}
	}
	if err := json.Unmarshal(data, &item); err != nil {
		return item, &APIError{Kind: common.ErrServer, Message: "malformed " + col.res.ItemKey}
	}
	return item, nil
}

func (col *Collection[T, P]) itemPath(id string) string {
	return col.res.Path + "/" + url.PathEscape(id)
}

func (col *Collection[T, P]) GetByID(ctx context.Context, id string) (T, error) {
	var data json.RawMessage
	if err := col.c.call(ctx, http.MethodGet, col.itemPath(id), nil, nil, true, &data); err != nil {
		var zero T
		return zero, fmt.Errorf("get %s %s: %w", col.res.ItemKey, id, err)
	}
	item, err := col.decodeItem(data)
	if err != nil {
		return item, fmt.Errorf("get %s %s: %w", col.res.ItemKey, id, err)
	}
	return item, nil
}

// Update sends patch and returns the updated entity. The caller refetches
// the list afterwards.
func (col *Collection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	if err := patch.Validate(); err != nil {
		return zero, err
	}
	var data json.RawMessage
	if err := col.c.call(ctx, http.MethodPut, col.itemPath(id), nil, patch, true, &data); err != nil {
		return zero, fmt.Errorf("update %s %s: %w", col.res.ItemKey, id, err)
	}
	item, err := col.decodeItem(data)
	if err != nil {
		return zero, fmt.Errorf("update %s %s: %w", col.res.ItemKey, id, err)
	}
	return item, nil
}

func (col *Collection[T, P]) Delete(ctx context.Context, id string) error {
	if err := col.c.call(ctx, http.MethodDelete, col.itemPath(id), nil, nil, true, nil); err != nil {
		return fmt.Errorf("delete %s %s: %w", col.res.ItemKey, id, err)
	}
	return nil
}
