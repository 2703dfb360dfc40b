package wsscene

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client is one connected renderer. Frames are queued on sendCh and written by
// writePump; a full queue disconnects the client instead of blocking the battle.
type client struct {
	hub       *Hub
	conn      *websocket.Conn
	sendCh    chan Frame
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newClient(h *Hub, conn *websocket.Conn) *client {
	return &client{
		hub:     h,
		conn:    conn,
		sendCh:  make(chan Frame, h.sendQueue),
		closeCh: make(chan struct{}),
	}
}

// send queues f without blocking.
func (c *client) send(f Frame) bool {
	select {
	case c.sendCh <- f:
		return true
	case <-c.closeCh:
		return false
	default:
		slog.Warn("spectator send queue full, disconnecting", "remote", c.conn.RemoteAddr().String())
		c.closeAsync()
		return false
	}
}

func (c *client) closeAsync() {
	c.closeOnce.Do(func() { close(c.closeCh) })
}

func (c *client) writePump() {
	defer c.conn.Close()
	for {
		select {
		case f := <-c.sendCh:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait)); err != nil {
				slog.Warn("set write deadline failed", "remote", c.conn.RemoteAddr().String(), "error", err)
				return
			}
			if err := c.conn.WriteJSON(f); err != nil {
				slog.Warn("spectator write failed", "remote", c.conn.RemoteAddr().String(), "error", err)
				c.closeAsync()
				return
			}
		case <-c.closeCh:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// readPump reads acks until the connection fails, then unregisters the client.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.closeAsync()
	}()
	for {
		var f Frame
		if err := c.conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("spectator read failed", "remote", c.conn.RemoteAddr().String(), "error", err)
			}
			return
		}
		if f.Type == FrameAck {
			c.hub.ack(f.Seq)
		}
	}
}
