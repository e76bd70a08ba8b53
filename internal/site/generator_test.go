package site

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	r := newTestRenderer(t, sensorCSV, nil)
	out := filepath.Join(t.TempDir(), "site")

	g := NewGenerator(r, out)
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("files written = %d, want 3", n)
	}

	for _, rel := range []string{"index.html", "static/style.css", "static/script.js"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	if !strings.Contains(html, `data-live="false"`) {
		t.Error("exported page should not try to search over the websocket")
	}
	if !strings.Contains(html, "Sensor B") {
		t.Error("exported page should include the publications table")
	}
}

func TestGenerateWithKeyword(t *testing.T) {
	r := newTestRenderer(t, sensorCSV, nil)
	out := t.TempDir()

	g := NewGenerator(r, out)
	g.Keyword = "misc"
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index, _ := os.ReadFile(filepath.Join(out, "index.html"))
	if strings.Contains(string(index), "Sensor A") {
		t.Error("keyword should filter the exported table")
	}
}

func TestGenerateFailsWithoutWriting(t *testing.T) {
	r := newTestRenderer(t, "YEAR\n1,2\n", nil)
	out := filepath.Join(t.TempDir(), "site")

	if _, err := NewGenerator(r, out).Generate(); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output dir should not be created when rendering fails")
	}
}

func TestNewBarChart(t *testing.T) {
	if newBarChart("empty", nil, 200) != nil {
		t.Error("no bars should give no chart")
	}

	c := newBarChart("focus", []bar{
		{Label: "a", Value: 30},
		{Label: "b", Value: 0},
		{Label: "c", Value: 40},
	}, 280)

	if len(c.Bars) != 3 {
		t.Fatalf("bars = %d", len(c.Bars))
	}
	if c.Bars[1].Path != "" {
		t.Error("a zero bar should have no shape")
	}
	if c.Bars[0].LabelX >= c.Bars[2].LabelX {
		t.Error("bars should be laid out left to right")
	}
	if got := c.Ticks[len(c.Ticks)-1].Label; got != "50" {
		t.Errorf("top tick = %q, want 50", got)
	}
	if c.Ticks[0].Y != c.Base {
		t.Errorf("zero tick at %v, want base %v", c.Ticks[0].Y, c.Base)
	}
}

func TestNiceCeil(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{1, 1},
		{3, 5},
		{7, 10},
		{12, 20},
		{22, 25},
		{40, 50},
		{100, 100},
		{0.3, 0.5},
	}
	for _, tt := range tests {
		if got := niceCeil(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("niceCeil(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundedTop(t *testing.T) {
	if roundedTop(0, 0, 10, 0, 6) != "" {
		t.Error("zero height should give an empty path")
	}
	p := roundedTop(10, 20, 30, 40, 6)
	if !strings.HasPrefix(p, "M10.00,26.00") || !strings.HasSuffix(p, "Z") {
		t.Errorf("path = %q", p)
	}
}
