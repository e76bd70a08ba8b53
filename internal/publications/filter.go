package publications

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Filter returns the rows in which any cell contains keyword,
// case-insensitively, in their original order. An empty keyword returns rs
// unchanged.
func Filter(rs *RecordSet, keyword string) *RecordSet {
	if keyword == "" || rs == nil {
		return rs
	}

	needle := strings.ToLower(keyword)
	out := &RecordSet{Columns: rs.Columns, Rows: [][]string{}}
	for _, row := range rs.Rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}

// YearCount is one bar of the publications-per-year histogram.
type YearCount struct {
	Year  float64 `json:"year"`
	Count int     `json:"count"`
}

// Label formats the year without a decimal point when it is whole.
func (y YearCount) Label() string {
	return strconv.FormatFloat(y.Year, 'f', -1, 64)
}

// YearHistogram counts rows per numeric value of column, ascending by year.
// Cells that do not parse as a finite number are skipped. It returns nil if
// the column is absent or holds no numeric values.
func YearHistogram(rs *RecordSet, column string) []YearCount {
	idx := rs.ColumnIndex(column)
	if idx < 0 {
		return nil
	}

	counts := make(map[float64]int)
	for _, row := range rs.Rows {
		year, ok := parseNumber(row[idx])
		if !ok {
			continue
		}
		counts[year]++
	}
	if len(counts) == 0 {
		return nil
	}

	hist := make([]YearCount, 0, len(counts))
	for y, c := range counts {
		hist = append(hist, YearCount{Year: y, Count: c})
	}
	sort.Slice(hist, func(i, j int) bool { return hist[i].Year < hist[j].Year })
	return hist
}

// Total returns the sum of all counts in hist.
func Total(hist []YearCount) int {
	n := 0
	for _, h := range hist {
		n += h.Count
	}
	return n
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
