// Package cache is the per-user local cache backing the dashboard's
// offline path. Values are whole serialized lists; callers never patch a
// cached value in place.
package cache

import "context"

// Store is a small key-value surface over the configured cache backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// WidgetKey builds the cache key holding a user's serialized widget list.
func WidgetKey(userID string) string {
	return "dashboard_widgets_" + userID
}
