package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"escalation-srv/internal/dashboard"
	"escalation-srv/pkg/log"
)

type registration struct {
	conn   *Connection
	result chan error
}

type outbound struct {
	data []byte
	// roles restricts delivery. Empty goes to every connection.
	roles []string
}

// Hub owns the connection set. Only the Run goroutine mutates it.
type Hub struct {
	clients map[string]map[*Connection]struct{}
	mu      sync.RWMutex

	register   chan registration
	unregister chan *Connection
	broadcast  chan outbound

	sent    atomic.Int64
	dropped atomic.Int64

	maxConnections int
	logger         log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newHub(logger log.Logger, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:        make(map[string]map[*Connection]struct{}),
		register:       make(chan registration),
		unregister:     make(chan *Connection, 64),
		broadcast:      make(chan outbound, 256),
		maxConnections: maxConnections,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return
		case r := <-h.register:
			r.result <- h.add(r.conn)
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) join(ctx context.Context, c *Connection) error {
	if h.ctx.Err() != nil {
		return dashboard.ErrHubClosed
	}
	r := registration{conn: c, result: make(chan error, 1)}
	select {
	case h.register <- r:
	case <-h.ctx.Done():
		return dashboard.ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-r.result
}

func (h *Hub) leave(c *Connection) {
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
	}
}

func (h *Hub) send(msg outbound) error {
	if h.ctx.Err() != nil {
		return dashboard.ErrHubClosed
	}
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.ctx.Done():
		return dashboard.ErrHubClosed
	}
}

func (h *Hub) add(c *Connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxConnections > 0 && h.countLocked() >= h.maxConnections {
		h.logger.Warnf(context.Background(), "internal.dashboard.usecase.Hub.add: rejecting %s: %v", c.clientID, dashboard.ErrMaxConnectionsReached)
		return dashboard.ErrMaxConnectionsReached
	}

	conns, ok := h.clients[c.clientID]
	if !ok {
		conns = make(map[*Connection]struct{})
		h.clients[c.clientID] = conns
	}
	conns[c] = struct{}{}

	h.logger.Infof(context.Background(), "internal.dashboard.usecase.Hub.add: %s connected (connections: %d)", c.clientID, h.countLocked())
	return nil
}

func (h *Hub) remove(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.clientID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	close(c.send)
	if len(conns) == 0 {
		delete(h.clients, c.clientID)
	}

	h.logger.Infof(context.Background(), "internal.dashboard.usecase.Hub.remove: %s disconnected (connections: %d)", c.clientID, h.countLocked())
}

func (h *Hub) deliver(msg outbound) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.clients {
		for c := range conns {
			if !c.accepts(msg.roles) {
				continue
			}
			select {
			case c.send <- msg.data:
				h.sent.Add(1)
			default:
				// Slow reader. Closing it makes readPump unregister it.
				h.dropped.Add(1)
				go c.Close()
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conns := range h.clients {
		for c := range conns {
			close(c.send)
			c.Close()
		}
		delete(h.clients, id)
	}
}

func (h *Hub) stats() dashboard.Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return dashboard.Stats{
		Connections: h.countLocked(),
		Clients:     len(h.clients),
		Sent:        h.sent.Load(),
		Dropped:     h.dropped.Load(),
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}

func (h *Hub) shutdown(ctx context.Context) error {
	h.cancel()
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func rolesMatch(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, r := range have {
			if strings.EqualFold(r, w) {
				return true
			}
		}
	}
	return false
}
