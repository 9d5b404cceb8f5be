package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matt-g-everett/ledsend/logger"
	"github.com/matt-g-everett/ledsend/stream"
	"github.com/sirupsen/logrus"
)

const writeWait = 250 * time.Millisecond

// StatsSource reports what has been streamed so far.
type StatsSource interface {
	Stats() stream.Stats
}

// Api serves the streamer status and a live websocket copy of every frame.
type Api struct {
	listen string
	log    *logrus.Entry

	mu      sync.Mutex
	stats   StatsSource
	clients map[*websocket.Conn]bool
}

// NewApi creates an Api that will listen on the given address.
func NewApi(listen string) *Api {
	a := new(Api)
	a.listen = listen
	a.log = logger.GetProjectLogger().WithField("component", "api")
	a.clients = make(map[*websocket.Conn]bool)
	return a
}

// Watch sets where /status reads its numbers from.
func (a *Api) Watch(stats StatsSource) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = stats
}

// Handler routes /status and /frames.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.HandleStatus)
	mux.HandleFunc("/frames", a.HandleFrames)
	return mux
}

// HandleStatus writes the current Stats as JSON.
func (a *Api) HandleStatus(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	source := a.stats
	a.mu.Unlock()

	var stats stream.Stats
	if source != nil {
		stats = source.Stats()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		a.log.Warnf("Writing status: %v", err)
	}
}

// HandleFrames upgrades to a websocket that receives every frame sent.
func (a *Api) HandleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		a.log.Debugf("Upgrade failed: %v", err)
		return
	}

	a.mu.Lock()
	a.clients[conn] = true
	a.mu.Unlock()
	a.log.Debugf("Frame viewer connected from %s", r.RemoteAddr)

	go func() {
		defer a.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (a *Api) drop(conn *websocket.Conn) {
	a.mu.Lock()
	delete(a.clients, conn)
	a.mu.Unlock()
	conn.Close()
}

// ClientCount is the number of connected frame viewers.
func (a *Api) ClientCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.clients)
}

// Send copies a frame to every frame viewer. Viewers that cannot keep up
// are disconnected; the frame is never refused.
func (a *Api) Send(b []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for conn := range a.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
			a.log.Debugf("Dropping frame viewer: %v", err)
			delete(a.clients, conn)
			conn.Close()
		}
	}
	return nil
}

// Close disconnects every frame viewer.
func (a *Api) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for conn := range a.clients {
		delete(a.clients, conn)
		conn.Close()
	}
	return nil
}

// Serve listens until the server fails.
func (a *Api) Serve() error {
	a.log.Infof("Listening on %s", a.listen)
	return http.ListenAndServe(a.listen, a.Handler())
}
