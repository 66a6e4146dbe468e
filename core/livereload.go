package core

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadEndpoint is the websocket path the injected page script connects to.
const ReloadEndpoint = "/__placard_reload"

type LiveReloaderInterface interface {
	BroadcastReload()
	Handler(http.ResponseWriter, *http.Request)
	ClientCount() int
}

// LiveReloader pushes a "reload" message to every connected browser when
// the page source changes.
type LiveReloader struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = struct{}{}
	lr.mu.Unlock()

	// Drain the connection until the browser goes away; clients never
	// send anything meaningful.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				break
			}
		}
		lr.drop(conn)
	}()
}

func (lr *LiveReloader) BroadcastReload() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(lr.clients, conn)
		}
	}
}

func (lr *LiveReloader) ClientCount() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return len(lr.clients)
}

func (lr *LiveReloader) drop(conn *websocket.Conn) {
	lr.mu.Lock()
	delete(lr.clients, conn)
	lr.mu.Unlock()
	conn.Close()
}
