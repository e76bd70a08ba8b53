package dashboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/eadegbola/profiler/internal/publications"
	"github.com/eadegbola/profiler/internal/site"
)

// ServeIndex renders the profile page, filtering publications by the q
// query parameter.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	opts := site.RenderOptions{
		Keyword: r.URL.Query().Get("q"),
		Live:    true,
	}
	if err := d.renderer.Render(w, opts); err != nil {
		d.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (d *Dashboard) serveAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

func (d *Dashboard) handlePublications(w http.ResponseWriter, r *http.Request) {
	view, err := d.renderer.Publications(r.URL.Query().Get("q"))
	if err != nil {
		d.logger.Error("loading publications", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if view.Histogram == nil {
		view.Histogram = []publications.YearCount{}
	}
	if view.Columns == nil {
		view.Columns = []string{}
	}
	if view.Rows == nil {
		view.Rows = [][]string{}
	}
	writeJSON(w, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
