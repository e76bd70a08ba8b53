package site

import (
	"fmt"
	"math"
)

// Chart geometry, in SVG user units. The chart is scaled to the container
// width by the browser, so only the height is configurable.
const (
	chartWidth   = 640.0
	chartTop     = 12.0
	chartBottom  = 44.0
	chartLeft    = 44.0
	chartRight   = 8.0
	chartGap     = 0.2
	cornerRadius = 6.0
	chartTicks   = 4
)

// categoryColors follows the tableau10 scheme used for categorical bars.
var categoryColors = []string{
	"#4c78a8", "#f58518", "#e45756", "#72b7b2", "#54a24b",
	"#eeca3b", "#b279a2", "#ff9da6", "#9d755d", "#bab0ac",
}

const seriesColor = "#0068c9"

type bar struct {
	Label   string
	Value   float64
	Tooltip string
	Color   string
}

type barShape struct {
	Path    string
	Color   string
	Tooltip string
	Label   string
	LabelX  float64
	LabelY  float64
}

type tick struct {
	Y     float64
	Label string
}

// barChart is a laid-out SVG bar chart ready for the "chart" template.
type barChart struct {
	Width  float64
	Height float64
	Left   float64
	Right  float64
	Base   float64
	Bars   []barShape
	Ticks  []tick
	Title  string
}

// newBarChart lays out bars left to right with the value axis starting at
// zero. It returns nil when there is nothing to draw.
func newBarChart(title string, bars []bar, height int) *barChart {
	if len(bars) == 0 {
		return nil
	}
	h := float64(height)
	plotH := h - chartTop - chartBottom
	plotW := chartWidth - chartLeft - chartRight
	base := chartTop + plotH

	maxV := 0.0
	for _, b := range bars {
		maxV = math.Max(maxV, b.Value)
	}
	top := niceCeil(maxV)

	c := &barChart{
		Width:  chartWidth,
		Height: h,
		Left:   chartLeft,
		Right:  chartWidth - chartRight,
		Base:   base,
		Title:  title,
	}

	for i := 0; i <= chartTicks; i++ {
		v := top * float64(i) / chartTicks
		c.Ticks = append(c.Ticks, tick{
			Y:     base - plotH*v/top,
			Label: formatValue(v),
		})
	}

	slot := plotW / float64(len(bars))
	w := slot * (1 - chartGap)
	for i, b := range bars {
		x := chartLeft + slot*float64(i) + (slot-w)/2
		bh := 0.0
		if b.Value > 0 {
			bh = plotH * b.Value / top
		}
		c.Bars = append(c.Bars, barShape{
			Path:    roundedTop(x, base-bh, w, bh, cornerRadius),
			Color:   b.Color,
			Tooltip: b.Tooltip,
			Label:   b.Label,
			LabelX:  x + w/2,
			LabelY:  base + 18,
		})
	}
	return c
}

// roundedTop returns an SVG path for a rectangle whose top corners are
// rounded with radius r.
func roundedTop(x, y, w, h, r float64) string {
	if h <= 0 {
		return ""
	}
	r = math.Min(r, math.Min(w/2, h))
	return fmt.Sprintf("M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f L%.2f,%.2f Q%.2f,%.2f %.2f,%.2f L%.2f,%.2f L%.2f,%.2f Z",
		x, y+r,
		x, y, x+r, y,
		x+w-r, y,
		x+w, y, x+w, y+r,
		x+w, y+h,
		x, y+h,
	)
}

// niceCeil rounds v up to 1, 2, 2.5 or 5 times a power of ten so the axis
// ticks land on readable values.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*exp >= v {
			return m * exp
		}
	}
	return 10 * exp
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
