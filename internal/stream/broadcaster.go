package stream

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"call-server/internal/observability"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CallEvent is pushed to every connected listener when a call changes state.
type CallEvent struct {
	CallSID   string    `json:"call_sid"`
	Status    string    `json:"status"`
	Direction string    `json:"direction"`
	WithPhone string    `json:"with_phone"`
	At        time.Time `json:"at"`
}

type welcomeMessage struct {
	Message string `json:"message"`
}

// Broadcaster fans call lifecycle events out to websocket listeners.
type Broadcaster struct {
	mu          sync.Mutex
	conns       map[*websocket.Conn]struct{}
	phoneNumber string
	logger      *observability.Logger
}

func NewBroadcaster(phoneNumber string, logger *observability.Logger) *Broadcaster {
	return &Broadcaster{
		conns:       make(map[*websocket.Conn]struct{}),
		phoneNumber: phoneNumber,
		logger:      logger,
	}
}

// HandleStream upgrades the request and registers the connection. The
// connection stays registered until the peer goes away.
func (b *Broadcaster) HandleStream(c *gin.Context) {
	ctx := c.Request.Context()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		b.logger.Error(ctx, "WebSocket upgrade failed", err)
		return
	}

	if err := conn.WriteJSON(welcomeMessage{Message: "Awaiting your call at " + b.phoneNumber}); err != nil {
		b.logger.Error(ctx, "Failed to write welcome message", err)
		conn.Close()
		return
	}

	b.mu.Lock()
	b.conns[conn] = struct{}{}
	b.mu.Unlock()
	b.logger.Info(ctx, "stream listener connected")

	// Drain reads so close frames and pings are processed. Listener
	// messages carry no meaning.
	go func() {
		defer b.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// PublishCallStatus sends the event to every listener. Connections that fail
// to accept the write are dropped.
func (b *Broadcaster) PublishCallStatus(event CallEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.conns {
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(b.conns, conn)
		}
	}
}

// ListenerCount reports the number of connected listeners.
func (b *Broadcaster) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.conns)
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	conn.Close()
	b.mu.Lock()
	delete(b.conns, conn)
	b.mu.Unlock()
}
