package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/eadegbola/profiler/internal/site"
)

// Dashboard serves the live profile page and its publications search.
type Dashboard struct {
	renderer *site.Renderer
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a new Dashboard. checkOrigin decides which websocket upgrades
// are accepted; nil accepts same-origin requests only.
func New(renderer *site.Renderer, logger *zap.Logger, checkOrigin func(*http.Request) bool) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		renderer: renderer,
		logger:   logger.Named("dashboard"),
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/static/style.css", d.serveAsset("text/css; charset=utf-8", site.Stylesheet()))
	r.Get("/static/script.js", d.serveAsset("text/javascript; charset=utf-8", site.Script()))
	r.Get("/api/publications", d.handlePublications)
	r.Get("/ws/publications", d.handleWebSocket)
}
