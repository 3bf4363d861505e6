package system

import (
	"sync"

	"go-research/internal/features/dashboard"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// SyncHub fans dashboard sync events out to a user's connected sockets.
// It is how background reconciliation outcomes reach the UI as passive
// notifications instead of blocking dialogs.
type SyncHub struct {
	logger *zap.Logger

	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func NewSyncHub(logger *zap.Logger) *SyncHub {
	return &SyncHub{
		logger: logger,
		conns:  make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *SyncHub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *SyncHub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

// Publish implements dashboard.EventPublisher. A dead socket is dropped;
// delivery is best-effort.
func (h *SyncHub) Publish(userID string, event dashboard.SyncEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[userID] {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Debug("dropping dead dashboard socket",
				zap.String("user_id", userID), zap.Error(err))
			conn.Close()
			delete(h.conns[userID], conn)
		}
	}
}
