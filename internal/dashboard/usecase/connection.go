package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"escalation-srv/pkg/log"
)

const maxInboundMessage = 512

// Connection is one dashboard websocket. Clients only listen; inbound
// frames are read and discarded so pongs and closes are seen.
type Connection struct {
	hub      *Hub
	conn     *websocket.Conn
	clientID string
	roles    []string
	send     chan []byte

	pongWait   time.Duration
	pingPeriod time.Duration
	writeWait  time.Duration

	logger    log.Logger
	done      chan struct{}
	closeOnce sync.Once
}

func (c *Connection) accepts(roles []string) bool {
	return rolesMatch(c.roles, roles)
}

func (c *Connection) readPump() {
	defer func() {
		c.hub.leave(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxInboundMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "internal.dashboard.usecase.readPump: %s: %v", c.clientID, err)
			}
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Connection) start() {
	go c.writePump()
	go c.readPump()
}

func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
