package dataset

import "fmt"

// Record is one species observation. Records are values; nothing mutates them
// after Generate returns.
type Record struct {
	SpeciesID     string
	PercentChange float64
	Jitter        float64
	Significant   bool
}

// Color is a hex fill color understood by the chart and lipgloss.
type Color string

const (
	ColorDeclining Color = "#E67E22"
	ColorImproving Color = "#7D9452"
	ColorStable    Color = "#D5D8DC"
)

const (
	// TrendThreshold is the absolute percent change separating stable species
	// from declining or improving ones.
	TrendThreshold = 15.0

	SignificantBorderWidth = 1.5
)

// Trend names the category behind each fill color.
type Trend int

const (
	TrendStable Trend = iota
	TrendDeclining
	TrendImproving
)

func (t Trend) String() string {
	switch t {
	case TrendDeclining:
		return "declining"
	case TrendImproving:
		return "improving"
	default:
		return "stable"
	}
}

// Style holds the presentation attributes derived from a record.
type Style struct {
	Trend       Trend
	Color       Color
	BorderWidth float64
}

// Outlined reports whether the point should be drawn with a border.
func (s Style) Outlined() bool { return s.BorderWidth > 0 }

// Styled pairs a record with its derived style.
type Styled struct {
	Record
	Style
}

func speciesID(index int) string {
	return fmt.Sprintf("Species %d", index)
}
