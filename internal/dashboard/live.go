package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// searchRequest is the incoming WebSocket message format.
type searchRequest struct {
	Type    string `json:"type"` // "search"
	Keyword string `json:"keyword"`
}

// searchResponse is the outgoing WebSocket message format.
type searchResponse struct {
	Type    string `json:"type"` // "publications" or "error"
	HTML    string `json:"html,omitempty"`
	Matched int    `json:"matched"`
	Content string `json:"content,omitempty"`
}

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	log := d.logger.With(zap.String("conn", uuid.NewString()))
	log.Debug("websocket connected")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var req searchRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.sendError(conn, log, "invalid message format")
			continue
		}

		switch req.Type {
		case "search":
			d.handleSearch(conn, log, req)
		default:
			d.sendError(conn, log, "unknown message type: "+req.Type)
		}
	}
}

// handleSearch re-renders the publications results for the keyword.
func (d *Dashboard) handleSearch(conn *websocket.Conn, log *zap.Logger, req searchRequest) {
	view, err := d.renderer.Publications(req.Keyword)
	if err != nil {
		d.sendError(conn, log, "loading publications: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := d.renderer.RenderResults(&buf, view); err != nil {
		d.sendError(conn, log, "rendering publications: "+err.Error())
		return
	}

	log.Debug("search", zap.String("keyword", req.Keyword), zap.Int("matched", view.Matched))
	d.send(conn, log, searchResponse{
		Type:    "publications",
		HTML:    buf.String(),
		Matched: view.Matched,
	})
}

func (d *Dashboard) send(conn *websocket.Conn, log *zap.Logger, resp searchResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Warn("websocket write", zap.Error(err))
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, log *zap.Logger, message string) {
	d.send(conn, log, searchResponse{Type: "error", Content: message})
}
