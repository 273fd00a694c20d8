package livereload

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const script = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  function connect() {
    var ws = new WebSocket(proto + location.host + "` + Route + `");
    ws.onmessage = function (e) { if (e.data === "` + ReloadMessage + `") location.reload(); };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>`

// Script renders the client snippet when enabled and nothing otherwise.
func Script(enabled bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !enabled {
			return nil
		}
		_, err := io.WriteString(w, script)
		return err
	})
}
