package serve

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tsumiki-site/tsumiki/log"
)

// reloadEndpoint is the websocket path the injected client script connects to.
const reloadEndpoint = "/__tsumiki_reload"

// reloadScript is appended to every served HTML document when livereload is
// enabled. It reloads the page on any message from the hub.
const reloadScript = `<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "` + reloadEndpoint + `");
  ws.onmessage = function () { location.reload(); };
  ws.onclose = function () { setTimeout(function () { location.reload(); }, 1000); };
})();
</script>`

// reloadHub tracks connected browsers and pushes reload notifications.
type reloadHub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The preview server only ever talks to the local browser.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *reloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain the connection so close frames are processed; the hub never
	// expects client messages.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast tells every connected browser to reload.
func (h *reloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}

// injectReload places the livereload client script at the end of the
// document body, or appends it when no closing body tag exists.
func injectReload(doc []byte) []byte {
	marker := []byte("</body>")
	if idx := bytes.LastIndex(doc, marker); idx >= 0 {
		var out bytes.Buffer
		out.Grow(len(doc) + len(reloadScript))
		out.Write(doc[:idx])
		out.WriteString(reloadScript)
		out.Write(doc[idx:])
		return out.Bytes()
	}
	return append(doc, []byte(reloadScript)...)
}
