package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go-research/internal/features/dashboard"
)

// WidgetStore implements dashboard.WidgetRepository against the managed
// store's dashboard-widgets endpoints.
type WidgetStore struct {
	client *Client
}

func NewWidgetStore(client *Client) dashboard.WidgetRepository {
	return &WidgetStore{client: client}
}

func (s *WidgetStore) ListByUser(ctx context.Context, userID string) ([]dashboard.Widget, error) {
	var widgets []dashboard.Widget
	path := "/dashboard-widgets?user_id=" + url.QueryEscape(userID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &widgets); err != nil {
		return nil, err
	}
	return widgets, nil
}

func (s *WidgetStore) Create(ctx context.Context, widget dashboard.Widget) (string, error) {
	// The temp id stays client-side; the store assigns the real one
	widget.ID = dashboard.WidgetID{}

	var created dashboard.Widget
	if err := s.client.do(ctx, http.MethodPost, "/dashboard-widgets", widget, &created); err != nil {
		return "", err
	}
	if created.ID.IsZero() {
		return "", fmt.Errorf("remote store returned a widget without an id")
	}
	return created.ID.String(), nil
}

func (s *WidgetStore) Update(ctx context.Context, widget dashboard.Widget) error {
	path := "/dashboard-widgets/" + url.PathEscape(widget.ID.String())
	return s.client.do(ctx, http.MethodPut, path, widget, nil)
}

func (s *WidgetStore) UpdateGeometry(ctx context.Context, userID string, updates []dashboard.GeometryUpdate) error {
	path := "/dashboard-widgets/layout?user_id=" + url.QueryEscape(userID)
	return s.client.do(ctx, http.MethodPut, path, updates, nil)
}

func (s *WidgetStore) Delete(ctx context.Context, userID, id string) error {
	path := "/dashboard-widgets/" + url.PathEscape(id) + "?user_id=" + url.QueryEscape(userID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil)
}
