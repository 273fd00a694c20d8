package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/nfrund/landing/internal/hub"
)

const writeTimeout = 5 * time.Second

// client is a middleman between one browser tab and the hub.
type client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump blocks until the browser goes away. Browsers never send anything
// meaningful on this socket, so frames are read and discarded.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Leave(c.subscriber)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				slog.Debug("Live reload read ended", "error", err)
			}
			return
		}
	}
}

// writePump sends hub broadcasts to the browser until the hub closes the
// channel. The socket is closed on the way out so the page script reconnects
// instead of waiting on a tab the hub no longer serves.
func (c *client) writePump() {
	defer c.conn.Close(websocket.StatusGoingAway, "live reload stopped")

	for message := range c.subscriber.Send {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := c.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			slog.Debug("Live reload write failed", "error", err)
			return
		}
	}
}
