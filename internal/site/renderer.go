package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/eadegbola/profiler/internal/config"
	"github.com/eadegbola/profiler/internal/publications"
)

// Chart heights, in SVG units.
const (
	researchChartHeight  = 280
	histogramChartHeight = 300
)

// Renderer turns a Config into the profile page. The profile copy is
// converted once; the photo and publications file are read on every render.
type Renderer struct {
	cfg    *config.Config
	logger *zap.Logger
	md     goldmark.Markdown
	tmpl   *template.Template
	copy   pageCopy
}

// RenderOptions controls a single render.
type RenderOptions struct {
	Keyword  string
	BasePath string // prefix for static asset URLs, e.g. "" or "../"
	Live     bool   // page is served by `profiler serve` and can search over the websocket
}

// PublicationsView is the publications section after loading, filtering and
// counting. Available is false when the CSV does not exist.
type PublicationsView struct {
	Available bool                     `json:"available"`
	Keyword   string                   `json:"keyword"`
	Columns   []string                 `json:"columns"`
	Rows      [][]string               `json:"rows"`
	Total     int                      `json:"total"`
	Matched   int                      `json:"matched"`
	Dated     int                      `json:"dated"`
	Histogram []publications.YearCount `json:"histogram"`
}

// pageCopy is the profile text converted to HTML.
type pageCopy struct {
	Bio      []template.HTML
	Journey  []template.HTML
	Research *barChart
	Caption  template.HTML
}

type pageData struct {
	Title    string
	IconURL  template.URL
	Layout   config.Layout
	BasePath string
	Live     bool
	PhotoURL template.URL
	Profile  *config.Profile
	Copy     pageCopy
	Results  resultsData
}

type resultsData struct {
	Labels    config.PublicationsSection
	View      *PublicationsView
	Histogram *barChart
}

// NewRenderer parses the page templates and converts the profile copy.
func NewRenderer(cfg *config.Config, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			html.WithHardWraps(),
		),
	)

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		logger: logger,
		md:     md,
		tmpl:   tmpl,
	}
	if r.copy, err = r.convertCopy(&cfg.Profile); err != nil {
		return nil, err
	}
	return r, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl := template.New("profiler")
	for name, src := range map[string]string{
		"page":    pageTemplate,
		"cards":   cardsTemplate,
		"chart":   chartTemplate,
		"results": resultsTemplate,
	} {
		if _, err := tmpl.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
	}
	return tmpl, nil
}

// convertCopy renders the markdown parts of the profile.
func (r *Renderer) convertCopy(p *config.Profile) (pageCopy, error) {
	var c pageCopy
	for _, para := range p.Bio {
		h, err := r.markdown(para)
		if err != nil {
			return c, fmt.Errorf("converting bio: %w", err)
		}
		c.Bio = append(c.Bio, h)
	}

	for _, step := range journeySteps(p.Journey.Stages) {
		h, err := r.markdown(step)
		if err != nil {
			return c, fmt.Errorf("converting journey: %w", err)
		}
		c.Journey = append(c.Journey, h)
	}

	caption, err := r.markdown(p.Research.Caption)
	if err != nil {
		return c, fmt.Errorf("converting research caption: %w", err)
	}
	c.Caption = caption

	bars := make([]bar, len(p.Research.Stages))
	for i, s := range p.Research.Stages {
		bars[i] = bar{
			Label:   s.Stage,
			Value:   s.Focus,
			Tooltip: fmt.Sprintf("%s: %s%%", s.Stage, formatValue(s.Focus)),
			Color:   categoryColors[i%len(categoryColors)],
		}
	}
	c.Research = newBarChart(p.Research.Title, bars, researchChartHeight)
	return c, nil
}

// journeySteps numbers the stages from 1. Every stage but the last is
// complete; the last is marked as the current one.
func journeySteps(stages []string) []string {
	steps := make([]string, len(stages))
	for i, s := range stages {
		n := i + 1
		if n < len(stages) {
			steps[i] = fmt.Sprintf("✅ Step %d: %s", n, s)
		} else {
			steps[i] = fmt.Sprintf("🔹 **Step %d: %s (Current Stage)**", n, s)
		}
	}
	return steps
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Publications loads the publications file, filters it by keyword and
// counts the remaining rows per year.
func (r *Renderer) Publications(keyword string) (*PublicationsView, error) {
	view := &PublicationsView{Keyword: keyword}

	all, err := publications.Load(r.cfg.Publications.File, r.cfg.Publications.Encoding)
	if errors.Is(err, publications.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, err
	}

	filtered := publications.Filter(all, keyword)
	view.Available = true
	view.Columns = filtered.Columns
	view.Rows = filtered.Rows
	view.Total = all.Len()
	view.Matched = filtered.Len()
	view.Histogram = publications.YearHistogram(filtered, strings.ToUpper(strings.TrimSpace(r.cfg.Publications.YearColumn)))
	view.Dated = publications.Total(view.Histogram)
	if view.Rows == nil {
		view.Rows = [][]string{}
	}
	return view, nil
}

func (r *Renderer) results(view *PublicationsView) resultsData {
	bars := make([]bar, len(view.Histogram))
	for i, h := range view.Histogram {
		bars[i] = bar{
			Label:   h.Label(),
			Value:   float64(h.Count),
			Tooltip: fmt.Sprintf("%s: %d", h.Label(), h.Count),
			Color:   seriesColor,
		}
	}
	return resultsData{
		Labels:    r.cfg.Profile.Publications,
		View:      view,
		Histogram: newBarChart(r.cfg.Profile.Publications.HistogramCaption, bars, histogramChartHeight),
	}
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, opts RenderOptions) error {
	photo, err := loadPhoto(r.cfg.Photo)
	if err != nil {
		return err
	}

	view, err := r.Publications(opts.Keyword)
	if err != nil {
		return err
	}

	data := pageData{
		Title:    r.cfg.Page.Title,
		IconURL:  iconURL(r.cfg.Page.Icon),
		Layout:   r.cfg.Page.Layout,
		BasePath: opts.BasePath,
		Live:     opts.Live,
		PhotoURL: photo,
		Profile:  &r.cfg.Profile,
		Copy:     r.copy,
		Results:  r.results(view),
	}

	r.logger.Debug("rendering page",
		zap.String("keyword", opts.Keyword),
		zap.Bool("photo", photo != ""),
		zap.Bool("publications", view.Available),
		zap.Int("matched", view.Matched),
	)

	return r.execute(w, "page", data)
}

// RenderResults writes only the publications results (table and
// histogram) for view.
func (r *Renderer) RenderResults(w io.Writer, view *PublicationsView) error {
	return r.execute(w, "results", r.results(view))
}

// execute buffers the output so a failed render writes nothing.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
