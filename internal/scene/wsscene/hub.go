// Package wsscene streams a battle to remote renderers over websocket.
//
// A Hub is both the battle.Scene and the battle.MessageSink of a Logic. Messages
// and banners are broadcast as they happen. Move animations are broadcast with a
// sequence number and block the battle until a renderer answers with an ack frame
// carrying it; with no renderer connected animations complete immediately.
package wsscene

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/udisondev/battlecore/internal/game/battle"
)

const (
	defaultWriteWait = 5 * time.Second
	defaultSendQueue = 256
)

// Hub fans battle output out to connected renderers.
type Hub struct {
	upgrader  websocket.Upgrader
	writeWait time.Duration
	sendQueue int

	mu      sync.Mutex
	clients map[*client]struct{}
	pending map[uint64]chan struct{}
	seq     uint64
	turn    int
	closed  bool
}

var (
	_ battle.Scene       = (*Hub)(nil)
	_ battle.MessageSink = (*Hub)(nil)
)

// NewHub creates a hub. Zero writeWait or sendQueue select defaults.
func NewHub(writeWait time.Duration, sendQueue int) *Hub {
	if writeWait <= 0 {
		writeWait = defaultWriteWait
	}
	if sendQueue <= 0 {
		sendQueue = defaultSendQueue
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		writeWait: writeWait,
		sendQueue: sendQueue,
		clients:   make(map[*client]struct{}),
		pending:   make(map[uint64]chan struct{}),
	}
}

// ServeHTTP upgrades the request and serves the renderer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	c := newClient(h, conn)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("spectator connected", "remote", r.RemoteAddr, "spectators", n)

	go c.writePump()
	c.readPump()
}

// Clients returns the number of connected renderers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every renderer and releases pending animations.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		c.closeAsync()
		delete(h.clients, c)
	}
	h.releaseLocked()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	if len(h.clients) == 0 {
		h.releaseLocked()
	}
	slog.Info("spectator disconnected", "remote", c.conn.RemoteAddr().String(), "spectators", len(h.clients))
}

// releaseLocked completes every animation still waiting for an ack.
func (h *Hub) releaseLocked() {
	for seq, ch := range h.pending {
		close(ch)
		delete(h.pending, seq)
	}
}

func (h *Hub) ack(seq uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.pending[seq]; ok {
		close(ch)
		delete(h.pending, seq)
	}
}

// broadcastLocked queues f on every client. Returns how many accepted it.
func (h *Hub) broadcastLocked(f Frame) int {
	if f.Turn == 0 {
		f.Turn = h.turn
	}
	n := 0
	for c := range h.clients {
		if c.send(f) {
			n++
		}
	}
	return n
}

func (h *Hub) broadcast(f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcastLocked(f)
}

// Emit implements battle.MessageSink.
func (h *Hub) Emit(msg battle.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turn = msg.Turn
	h.broadcastLocked(Frame{Type: FrameMessage, Turn: msg.Turn, Key: msg.Key, Text: msg.Text})
}

// ShowAbility implements battle.Scene.
func (h *Hub) ShowAbility(b *battle.Battler) {
	h.broadcast(Frame{Type: FrameAbility, Battler: actorRef(b), Symbol: b.Ability()})
}

// ShowItem implements battle.Scene.
func (h *Hub) ShowItem(b *battle.Battler) {
	item := b.Item()
	if item == "" {
		item = b.ConsumedItem()
	}
	h.broadcast(Frame{Type: FrameItem, Battler: actorRef(b), Symbol: item})
}

// PlayMoveAnimation implements battle.Scene. It returns once any renderer acks
// the animation, every renderer is gone, or ctx ends.
func (h *Hub) PlayMoveAnimation(ctx context.Context, user *battle.Battler, move *battle.Move, targets []*battle.Battler) error {
	f := Frame{Type: FrameAnimation, Battler: actorRef(user), Move: move.Symbol()}
	for _, t := range targets {
		f.Targets = append(f.Targets, actorOf(t))
	}

	h.mu.Lock()
	h.seq++
	f.Seq = h.seq
	done := make(chan struct{})
	h.pending[f.Seq] = done
	if h.broadcastLocked(f) == 0 {
		delete(h.pending, f.Seq)
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		h.mu.Lock()
		delete(h.pending, f.Seq)
		h.mu.Unlock()
		return fmt.Errorf("waiting for animation %d of %s: %w", f.Seq, move.Symbol(), ctx.Err())
	}
}
