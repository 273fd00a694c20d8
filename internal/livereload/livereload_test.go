package livereload_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/hub"
	"github.com/nfrund/landing/internal/livereload"
	"github.com/nfrund/landing/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, livereload.Script(false).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())

	require.NoError(t, livereload.Script(true).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), livereload.Route)
	assert.True(t, strings.HasPrefix(buf.String(), "<script>"))
}

func TestContentReloadReachesBrowser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := hub.NewHub()
	go h.Run(ctx)

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()
	require.NoError(t, livereload.Subscribe(ctx, bus, h))

	e := echo.New()
	e.GET(livereload.Route, livereload.NewHandler(h).ServeWS)
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + livereload.Route
	dialCtx, dialCancel := context.WithTimeout(ctx, 5*time.Second)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return h.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Publish(ctx, pubsub.Message{Topic: content.TopicReloaded}))

	_, data, err := conn.Read(dialCtx)
	require.NoError(t, err)
	assert.Equal(t, livereload.ReloadMessage, string(data))
}

func dialLiveReload(t *testing.T, ctx context.Context, h *hub.Hub) *websocket.Conn {
	t.Helper()
	e := echo.New()
	e.GET(livereload.Route, livereload.NewHandler(h).ServeWS)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + livereload.Route
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func TestClientIsDisconnectedWhenHubStops(t *testing.T) {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	h := hub.NewHub()
	go h.Run(hubCtx)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dialLiveReload(t, ctx, h)
	require.Eventually(t, func() bool { return h.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	stopHub()

	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}

func TestConnectAfterHubStopsIsRefused(t *testing.T) {
	hubCtx, stopHub := context.WithCancel(context.Background())
	h := hub.NewHub()
	go h.Run(hubCtx)
	stopHub()
	<-h.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dialLiveReload(t, ctx, h)

	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
