// Package livereload pushes a "reload" signal to open browser tabs whenever
// site content changes on disk. It is a development aid enabled by LIVE_RELOAD.
package livereload

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/hub"
	"github.com/nfrund/landing/internal/pubsub"
)

const (
	// Route is where browsers open the live reload socket.
	Route = "/dev/livereload"

	// ReloadMessage is the only frame the server ever sends.
	ReloadMessage = "reload"
)

// Handler upgrades live reload connections and registers them on the hub.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a new live reload handler.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// ServeWS handles GET /dev/livereload.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Only ever mounted in development.
		InsecureSkipVerify: true,
	})
	if err != nil {
		// Accept has already written the handshake error response.
		slog.Warn("Failed to upgrade live reload connection", "error", err)
		return nil
	}

	client := &client{conn: conn, hub: h.hub, subscriber: hub.NewSubscriber()}
	if !h.hub.Join(client.subscriber) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}

	go client.writePump()
	client.readPump(c.Request().Context())
	return nil
}

// Subscribe forwards every content reload on the bus to the hub as a reload frame.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, h *hub.Hub) error {
	return sub.Subscribe(ctx, content.TopicReloaded, func(ctx context.Context, msg pubsub.Message) error {
		slog.Info("Content changed, reloading browsers", "reloaded_at", msg.Metadata["reloaded_at"])
		select {
		case h.Broadcast <- []byte(ReloadMessage):
			return nil
		case <-h.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
