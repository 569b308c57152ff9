package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types pushed to clients.
const (
	EventEmotionRecorded   = "emotion_record.created"
	EventExpressionCreated = "expression_record.created"
	EventExpressionUpdated = "expression_record.updated"
	EventExpressionDeleted = "expression_record.deleted"
	EventCarePlanUpdated   = "care_plan.updated"
	EventProfileCreated    = "child_profile.created"
)

// TokenSubprotocol is the Sec-WebSocket-Protocol entry that precedes the
// bearer token when a browser opens the stream with
// new WebSocket(url, ["bearer", token]).
const TokenSubprotocol = "bearer"

// Event represents a message sent to websocket clients
type Event struct {
	Type           string `json:"type"`
	ChildProfileID string `json:"childProfileId,omitempty"`
	RecordID       string `json:"recordId,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

// Publisher delivers an event to every connection of one user.
type Publisher interface {
	Publish(userID uint, event Event)
}

type Client struct {
	userID uint
	conn   *websocket.Conn
	send   chan []byte
}

type delivery struct {
	userID  uint
	message []byte
}

// Hub routes events to the websocket connections of the user they belong
// to. Events are never broadcast across users.
type Hub struct {
	clients    map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	done       chan struct{}
	mu         sync.RWMutex
	now        func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan delivery, 256),
		done:       make(chan struct{}),
		now:        time.Now,
	}
}

// Run routes registrations and events until ctx is cancelled. On return
// every open connection is closed.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		case d := <-h.deliver:
			h.mu.Lock()
			for client := range h.clients[d.userID] {
				select {
				case client.send <- d.message:
				default:
					// slow consumer
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	for _, conns := range h.clients {
		for client := range conns {
			h.remove(client)
		}
	}
	h.mu.Unlock()
	close(h.done)
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	conns, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := conns[client]; ok {
		delete(conns, client)
		close(client.send)
	}
	if len(conns) == 0 {
		delete(h.clients, client.userID)
	}
}

// ConnectionCount returns the number of open connections for userID.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Publish queues event for userID's connections. It never blocks; events are
// dropped when the queue is full.
func (h *Hub) Publish(userID uint, event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = h.now().UnixMilli()
	}
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to marshal event: %v", err)
		return
	}
	select {
	case h.deliver <- delivery{userID: userID, message: encoded}:
	default:
		log.Printf("realtime: dropping %s event for user %d, queue full", event.Type, userID)
	}
}

// NewUpgrader returns an upgrader that accepts the given browser origins.
// Requests without an Origin header (non-browser clients) are accepted.
func NewUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		Subprotocols: []string{TokenSubprotocol},
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed["*"] || allowed[origin]
		},
	}
}

// ServeWS upgrades the connection and registers it for userID. It returns
// when the client goes away.
func (h *Hub) ServeWS(upgrader websocket.Upgrader, userID uint, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("realtime: websocket upgrade error: %v", err)
		return
	}
	// the server's read/write timeouts must not apply to a long-lived stream
	if err := conn.UnderlyingConn().SetDeadline(time.Time{}); err != nil {
		log.Printf("realtime: failed to clear connection deadline: %v", err)
	}
	client := &Client{userID: userID, conn: conn, send: make(chan []byte, 64)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	// writer
	go func() {
		for msg := range client.send {
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
		client.conn.Close()
	}()

	// reader (just consume pings/close)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
