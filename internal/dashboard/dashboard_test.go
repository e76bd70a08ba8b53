package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/eadegbola/profiler/internal/config"
	"github.com/eadegbola/profiler/internal/publications"
	"github.com/eadegbola/profiler/internal/server"
	"github.com/eadegbola/profiler/internal/site"
)

const testCSV = `YEAR,TITLE,JOURNAL
2021,Sensor A,Electroanalysis
2022,Sensor B,Talanta
2022,Carbon dots,Nanoscale
`

// setupTest returns a router serving a Dashboard over the given CSV. An
// empty csv leaves the publications file missing.
func setupTest(t *testing.T, csv string) chi.Router {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Photo = filepath.Join(dir, "missing.jpg")
	cfg.Publications.File = filepath.Join(dir, "PUBLICATIONS.csv")
	cfg.Publications.Encoding = "utf-8"
	if csv != "" {
		if err := os.WriteFile(cfg.Publications.File, []byte(csv), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	renderer, err := site.NewRenderer(cfg, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	r := chi.NewRouter()
	New(renderer, nil, nil).RegisterRoutes(r)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServeIndex(t *testing.T) {
	r := setupTest(t, testCSV)
	w := get(r, "/?q=carbon")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	if live, _ := doc.Find("body").Attr("data-live"); live != "true" {
		t.Errorf("data-live = %q, want true", live)
	}
	rows := doc.Find("#publications tbody tr")
	if rows.Length() != 1 {
		t.Fatalf("expected 1 row for q=carbon, got %d", rows.Length())
	}
	if got := rows.Find("td").Eq(1).Text(); got != "Carbon dots" {
		t.Errorf("row title = %q", got)
	}
}

func TestServeIndexMalformedCSV(t *testing.T) {
	r := setupTest(t, "YEAR\n2021,extra\n")
	w := get(r, "/")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "<html") {
		t.Error("a failed render should not send a partial page")
	}
}

func TestStaticAssets(t *testing.T) {
	r := setupTest(t, "")

	tests := []struct {
		path, contentType, contains string
	}{
		{"/static/style.css", "text/css", ".hero-container"},
		{"/static/script.js", "text/javascript", "ws/publications"},
	}
	for _, tt := range tests {
		w := get(r, tt.path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tt.path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
			t.Errorf("%s: content type = %q", tt.path, ct)
		}
		if !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("%s: body missing %q", tt.path, tt.contains)
		}
	}
}

func TestPublicationsEndpoint(t *testing.T) {
	r := setupTest(t, testCSV)
	w := get(r, "/api/publications?q=SENSOR")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view site.PublicationsView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !view.Available {
		t.Error("expected publications to be available")
	}
	if view.Total != 3 || view.Matched != 2 {
		t.Errorf("total/matched = %d/%d, want 3/2", view.Total, view.Matched)
	}
	if view.Dated != 2 {
		t.Errorf("dated = %d, want 2", view.Dated)
	}
	if len(view.Rows) != 2 || view.Rows[1][1] != "Sensor B" {
		t.Errorf("rows = %v", view.Rows)
	}
	want := []publications.YearCount{{Year: 2021, Count: 1}, {Year: 2022, Count: 1}}
	if len(view.Histogram) != len(want) {
		t.Fatalf("histogram = %v, want %v", view.Histogram, want)
	}
	for i := range want {
		if view.Histogram[i] != want[i] {
			t.Errorf("histogram[%d] = %v, want %v", i, view.Histogram[i], want[i])
		}
	}
}

func TestPublicationsEndpointMissingFile(t *testing.T) {
	r := setupTest(t, "")
	w := get(r, "/api/publications")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"available":false`, `"rows":[]`, `"histogram":[]`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/publications"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	return conn
}

func TestWebSocketSearch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := httptest.NewServer(setupTest(t, testCSV))
	defer server.Close()

	conn := dial(t, server)
	defer conn.Close()

	if err := conn.WriteJSON(searchRequest{Type: "search", Keyword: "talanta"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var resp searchResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "publications" {
		t.Fatalf("type = %q (%s)", resp.Type, resp.Content)
	}
	if resp.Matched != 1 {
		t.Errorf("matched = %d, want 1", resp.Matched)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.HTML))
	if err != nil {
		t.Fatalf("parsing fragment: %v", err)
	}
	if got := doc.Find("tbody tr td").Eq(1).Text(); got != "Sensor B" {
		t.Errorf("fragment row title = %q", got)
	}
	if doc.Find("html head title").Text() != "" {
		t.Error("fragment should not contain the full page")
	}
}

func TestWebSocketErrors(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := httptest.NewServer(setupTest(t, testCSV))
	defer server.Close()

	conn := dial(t, server)
	defer conn.Close()

	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"bad json", "{not json", "invalid message format"},
		{"unknown type", `{"type":"chat","keyword":"x"}`, "unknown message type: chat"},
	}
	for _, tt := range tests {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
			t.Fatalf("%s: write: %v", tt.name, err)
		}
		var resp searchResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("%s: read: %v", tt.name, err)
		}
		if resp.Type != "error" || resp.Content != tt.want {
			t.Errorf("%s: got %+v, want error %q", tt.name, resp, tt.want)
		}
	}
}

func TestWebSocketOriginPolicy(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Photo = filepath.Join(dir, "missing.jpg")
	cfg.Publications.File = filepath.Join(dir, "missing.csv")
	renderer, err := site.NewRenderer(cfg, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	srv := server.New(server.Config{}, nil)
	New(renderer, nil, srv.CheckOrigin).RegisterRoutes(srv.Router())
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/publications"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err == nil {
		conn.Close()
		t.Fatal("expected a foreign origin to be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for a foreign origin, got %v", resp)
	}
	if resp != nil {
		resp.Body.Close()
	}

	header = http.Header{"Origin": []string{"http://localhost:3000"}}
	conn, _, err = websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("expected a localhost origin to be accepted: %v", err)
	}
	conn.Close()
}
