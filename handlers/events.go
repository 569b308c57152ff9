package handlers

import (
	"net/http"

	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/gorilla/websocket"
)

// EventsHandler streams the caller's record change events over a websocket.
type EventsHandler struct {
	Hub      *realtime.Hub
	Upgrader websocket.Upgrader
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	h.Hub.ServeWS(h.Upgrader, userID, w, r)
}

// Health reports that the process is serving requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
