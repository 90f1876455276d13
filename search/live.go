package search

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cookly/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// liveRequest is sent by the client on every keystroke or filter toggle.
type liveRequest struct {
	Query   string               `json:"query"`
	Filters models.SearchFilters `json:"filters"`
}

// LiveSearch upgrades to a websocket and drives a private Engine from the
// client's input, pushing every state change back.
func (h *Handler) LiveSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[SearchWS] upgrade:", err)
		return
	}
	// the server's ReadTimeout deadline survives the hijack
	conn.SetReadDeadline(time.Time{})
	conn.SetReadLimit(maxMessageSize)

	engine := NewEngine(h.recipes, h.opts...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		writePump(conn, engine.Updates())
	}()

	readPump(conn, engine)

	engine.Close()
	<-done
	conn.Close()
}

func readPump(conn *websocket.Conn, engine *Engine) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("[SearchWS] read:", err)
			}
			return
		}

		var in liveRequest
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("[SearchWS] invalid payload:", err)
			continue
		}
		engine.Update(in.Query, in.Filters)
	}
}

func writePump(conn *websocket.Conn, updates <-chan Snapshot) {
	for snap := range updates {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			log.Println("[SearchWS] write:", err)
			// unblock the reader; the engine stays safe to publish into
			conn.Close()
			for range updates {
			}
			return
		}
	}
}
