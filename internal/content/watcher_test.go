package content_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/pubsub"
	"github.com/nfrund/landing/web"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsAndPublishes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file watcher test in short mode")
	}

	dir := t.TempDir()
	store, err := content.NewStore(content.NewLoader(content.NewFS(web.ContentFS(), dir)))
	require.NoError(t, err)

	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan pubsub.Message, 1)
	require.NoError(t, bus.Subscribe(ctx, content.TopicReloaded, func(ctx context.Context, msg pubsub.Message) error {
		reloaded <- msg
		return nil
	}))

	w := content.NewWatcher(dir, store, bus).WithDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(ctx))

	data, err := afero.ReadFile(content.NewFS(web.ContentFS(), ""), content.ResumeFile)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "name: John Smith", "name: Ada Lovelace", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, content.ResumeFile), []byte(edited), 0o644))

	select {
	case msg := <-reloaded:
		assert.Equal(t, content.TopicReloaded, msg.Topic)
		assert.NotEmpty(t, msg.Metadata["reloaded_at"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for content.reloaded")
	}
	assert.Equal(t, "Ada Lovelace", store.Site().Resume.Name)
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	store, err := content.NewStore(content.NewLoader(content.NewFS(web.ContentFS(), "")))
	require.NoError(t, err)

	w := content.NewWatcher(filepath.Join(t.TempDir(), "missing"), store, nil)
	assert.Error(t, w.Start(context.Background()))
}
