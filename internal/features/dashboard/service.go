package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-research/internal/cache"
	"go-research/internal/metrics"

	"go.uber.org/zap"
)

// SyncEvent is pushed to the UI over the websocket hub when a background
// remote call settles.
type SyncEvent struct {
	Type     string `json:"type"` // widget_synced | sync_failed
	Op       string `json:"op"`   // create | update | delete | layout
	WidgetID string `json:"widget_id,omitempty"`
}

// EventPublisher delivers sync events to a user's connected dashboards.
type EventPublisher interface {
	Publish(userID string, event SyncEvent)
}

// WidgetService is the dashboard widget engine. Mutations apply to the
// session and local cache immediately; the remote store is updated in the
// background and never blocks a caller.
type WidgetService interface {
	LoadWidgets(ctx context.Context, sess *Session) ([]Widget, error)
	AddWidget(ctx context.Context, sess *Session, widgetType WidgetType, modifierHeld bool) (Widget, error)
	UpdateGeometry(ctx context.Context, sess *Session, updates []GeometryUpdate) error
	RemoveWidget(ctx context.Context, sess *Session, id string) error
	ConfigureWidget(ctx context.Context, sess *Session, id string, config map[string]interface{}) (Widget, error)
}

type WidgetServiceImpl struct {
	Repo    WidgetRepository
	Cache   cache.Store
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Events  EventPublisher

	remoteTimeout time.Duration
	wg            sync.WaitGroup
}

func NewWidgetService(repo WidgetRepository, cacheStore cache.Store, logger *zap.Logger, m *metrics.Metrics, events EventPublisher) WidgetService {
	return &WidgetServiceImpl{
		Repo:          repo,
		Cache:         cacheStore,
		Logger:        logger,
		Metrics:       m,
		Events:        events,
		remoteTimeout: 10 * time.Second,
	}
}

// Wait blocks until every in-flight background remote call has settled.
// Used on shutdown and by tests.
func (s *WidgetServiceImpl) Wait() {
	s.wg.Wait()
}

// LoadWidgets renders from the local cache first, then fetches the remote
// list. The remote result replaces the session only on the initial load;
// later calls never disturb a session mid-interaction. A remote failure
// degrades to cache-only operation.
func (s *WidgetServiceImpl) LoadWidgets(ctx context.Context, sess *Session) ([]Widget, error) {
	cached := s.readCache(ctx, sess.UserID)

	sess.mu.Lock()
	if !sess.loaded && sess.widgets == nil {
		sess.widgets = cached
	}
	sess.mu.Unlock()

	remote, err := s.Repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		s.Metrics.CacheFallbacks.Inc()
		s.Logger.Warn("remote widget load failed, serving cached state",
			zap.String("user_id", sess.UserID), zap.Error(err))

		sess.mu.Lock()
		defer sess.mu.Unlock()
		return sess.snapshot(), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.loaded {
		sess.widgets = reconcile(sess.widgets, remote)
		sess.loaded = true
		s.writeCacheLocked(sess)
	}

	return sess.snapshot(), nil
}

// reconcile merges the remote list into the local one at initial load.
// Remote wins, except local widgets the server never acknowledged are kept:
// dropping them would discard user work that is still queued for creation.
func reconcile(local, remote []Widget) []Widget {
	merged := make([]Widget, len(remote))
	copy(merged, remote)

	for _, w := range local {
		if w.ID.Pending() {
			merged = append(merged, w)
		}
	}
	return merged
}

// AddWidget refuses a second widget of the same type unless the caller held
// the duplicate modifier. The widget is visible (with a temporary id) and
// cached before the remote create is even issued.
func (s *WidgetServiceImpl) AddWidget(ctx context.Context, sess *Session, widgetType WidgetType, modifierHeld bool) (Widget, error) {
	if !widgetType.Valid() {
		return Widget{}, fmt.Errorf("unknown widget type '%s'", widgetType)
	}

	widget := Widget{
		ID:        NewPendingID(),
		UserID:    sess.UserID,
		Type:      widgetType,
		Size:      DefaultSize(widgetType),
		Config:    DefaultConfig(widgetType),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	sess.mu.Lock()
	if !modifierHeld {
		for _, w := range sess.widgets {
			if w.Type == widgetType {
				sess.mu.Unlock()
				return Widget{}, fmt.Errorf("a '%s' widget already exists on this dashboard", widgetType)
			}
		}
	}
	widget.Position = nextFreePosition(sess.widgets)
	sess.widgets = append(sess.widgets, widget)
	s.writeCacheLocked(sess)
	sess.mu.Unlock()

	s.Metrics.WidgetsCreated.WithLabelValues(string(widgetType)).Inc()

	tempID := widget.ID
	s.background(func(ctx context.Context) {
		serverID, err := s.Repo.Create(ctx, widget)
		if err != nil {
			s.remoteFailed(sess.UserID, "create", tempID.String(), err)
			return
		}

		// Swap the temporary id in place; the widget never leaves the list
		sess.mu.Lock()
		for i := range sess.widgets {
			if sess.widgets[i].ID == tempID {
				sess.widgets[i].ID = PersistedID(serverID)
				break
			}
		}
		s.writeCacheLocked(sess)
		sess.mu.Unlock()

		s.publish(sess.UserID, SyncEvent{Type: "widget_synced", Op: "create", WidgetID: serverID})
	})

	return widget, nil
}

// nextFreePosition stacks a new widget below the current bottom edge.
func nextFreePosition(widgets []Widget) GridPosition {
	bottom := 0
	for _, w := range widgets {
		if edge := w.Position.Y + w.Size.Height; edge > bottom {
			bottom = edge
		}
	}
	return GridPosition{X: 0, Y: bottom}
}

// UpdateGeometry applies one layout settle event: the whole batch lands in
// the session and cache synchronously, then a single background call pushes
// the persisted widgets' geometry to the remote store.
func (s *WidgetServiceImpl) UpdateGeometry(ctx context.Context, sess *Session, updates []GeometryUpdate) error {
	for _, u := range updates {
		if u.Position.X < 0 || u.Position.Y < 0 {
			return fmt.Errorf("widget '%s': grid coordinates must be non-negative", u.ID)
		}
		if u.Size.Width <= 0 || u.Size.Height <= 0 {
			return fmt.Errorf("widget '%s': grid size must be positive", u.ID)
		}
	}

	sess.mu.Lock()
	byID := make(map[string]GeometryUpdate, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}
	for i := range sess.widgets {
		if u, ok := byID[sess.widgets[i].ID.String()]; ok {
			sess.widgets[i].Position = u.Position
			sess.widgets[i].Size = u.Size
			sess.widgets[i].UpdatedAt = time.Now()
		}
	}
	s.writeCacheLocked(sess)
	sess.mu.Unlock()

	// Only widgets the server knows about are pushed; a pending widget's
	// geometry rides along with its eventual create.
	persisted := make([]GeometryUpdate, 0, len(updates))
	for _, u := range updates {
		if !ParseWidgetID(u.ID).Pending() {
			persisted = append(persisted, u)
		}
	}
	if len(persisted) == 0 {
		return nil
	}

	s.background(func(ctx context.Context) {
		if err := s.Repo.UpdateGeometry(ctx, sess.UserID, persisted); err != nil {
			s.remoteFailed(sess.UserID, "layout", "", err)
			return
		}
		s.publish(sess.UserID, SyncEvent{Type: "widget_synced", Op: "layout"})
	})

	return nil
}

// RemoveWidget drops the widget locally; never-persisted ids skip the
// remote call entirely.
func (s *WidgetServiceImpl) RemoveWidget(ctx context.Context, sess *Session, id string) error {
	sess.mu.Lock()
	index := -1
	for i := range sess.widgets {
		if sess.widgets[i].ID.String() == id {
			index = i
			break
		}
	}
	if index < 0 {
		sess.mu.Unlock()
		return fmt.Errorf("widget '%s' not found", id)
	}
	sess.widgets = append(sess.widgets[:index], sess.widgets[index+1:]...)
	s.writeCacheLocked(sess)
	sess.mu.Unlock()

	if ParseWidgetID(id).Pending() {
		return nil
	}

	s.background(func(ctx context.Context) {
		if err := s.Repo.Delete(ctx, sess.UserID, id); err != nil {
			s.remoteFailed(sess.UserID, "delete", id, err)
			return
		}
		s.publish(sess.UserID, SyncEvent{Type: "widget_synced", Op: "delete", WidgetID: id})
	})

	return nil
}

// ConfigureWidget validates the config against the widget type's schema
// before touching any state, then applies it locally and schedules the
// remote update. The returned widget is what the UI re-renders from.
func (s *WidgetServiceImpl) ConfigureWidget(ctx context.Context, sess *Session, id string, config map[string]interface{}) (Widget, error) {
	sess.mu.Lock()
	index := -1
	for i := range sess.widgets {
		if sess.widgets[i].ID.String() == id {
			index = i
			break
		}
	}
	if index < 0 {
		sess.mu.Unlock()
		return Widget{}, fmt.Errorf("widget '%s' not found", id)
	}

	normalized, err := NormalizeConfig(sess.widgets[index].Type, config)
	if err != nil {
		sess.mu.Unlock()
		return Widget{}, err
	}

	sess.widgets[index].Config = normalized
	sess.widgets[index].UpdatedAt = time.Now()
	updated := sess.widgets[index]
	s.writeCacheLocked(sess)
	sess.mu.Unlock()

	if !updated.ID.Pending() {
		s.background(func(ctx context.Context) {
			if err := s.Repo.Update(ctx, updated); err != nil {
				s.remoteFailed(sess.UserID, "update", id, err)
				return
			}
			s.publish(sess.UserID, SyncEvent{Type: "widget_synced", Op: "update", WidgetID: id})
		})
	}

	return updated, nil
}

// writeCacheLocked re-serializes the session's entire widget list into the
// cache. Callers hold the session lock, which keeps cache writes in the
// same order as the mutations they reflect.
func (s *WidgetServiceImpl) writeCacheLocked(sess *Session) {
	data, err := json.Marshal(sess.widgets)
	if err != nil {
		s.Logger.Error("failed to serialize widget list",
			zap.String("user_id", sess.UserID), zap.Error(err))
		return
	}
	if err := s.Cache.Set(context.Background(), cache.WidgetKey(sess.UserID), data); err != nil {
		s.Logger.Warn("widget cache write failed",
			zap.String("user_id", sess.UserID), zap.Error(err))
	}
}

func (s *WidgetServiceImpl) readCache(ctx context.Context, userID string) []Widget {
	data, ok, err := s.Cache.Get(ctx, cache.WidgetKey(userID))
	if err != nil {
		s.Logger.Warn("widget cache read failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var widgets []Widget
	if err := json.Unmarshal(data, &widgets); err != nil {
		s.Logger.Warn("discarding unreadable widget cache entry",
			zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return widgets
}

func (s *WidgetServiceImpl) background(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.remoteTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (s *WidgetServiceImpl) remoteFailed(userID, op, widgetID string, err error) {
	s.Metrics.SyncFailures.WithLabelValues(op).Inc()
	s.Logger.Warn("remote widget sync failed",
		zap.String("user_id", userID),
		zap.String("op", op),
		zap.String("widget_id", widgetID),
		zap.Error(err))
	s.publish(userID, SyncEvent{Type: "sync_failed", Op: op, WidgetID: widgetID})
}

func (s *WidgetServiceImpl) publish(userID string, event SyncEvent) {
	if s.Events != nil {
		s.Events.Publish(userID, event)
	}
}
