// Package chart draws the abundance-change strip chart on a terminal canvas.
package chart

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/butterflies/internal/dataset"
)

const (
	markerPlain    = '●'
	markerOutlined = '◉'
	markerSelected = '◆'

	defaultWidth  = 80
	defaultHeight = 14
	minHeight     = 3
)

var (
	gridColor  = lipgloss.Color("#45475a")
	zeroColor  = lipgloss.Color("#7f849c")
	labelColor = lipgloss.Color("#a6adc8")
	titleColor = lipgloss.Color("#cdd6f4")
	hoverColor = lipgloss.Color("#f5c2e7")
)

// Tick is one labelled position on the change axis.
type Tick struct {
	Value float64
	Label string
}

// DefaultTicks labels -100..100 in steps of 25.
func DefaultTicks() []Tick {
	return []Tick{
		{-100, "-100%"}, {-75, "-75"}, {-50, "-50"}, {-25, "-25"}, {0, "0"},
		{25, "+25"}, {50, "+50"}, {75, "+75"}, {100, "+100"},
	}
}

// Options controls the chart frame. Selected is an index into the points
// passed to RenderStrip, or -1 for no selection.
type Options struct {
	Title    string
	Width    int
	Height   int
	XMin     float64
	XMax     float64
	YMin     float64
	YMax     float64
	Ticks    []Tick
	Selected int
}

func DefaultOptions() Options {
	return Options{
		Width:    defaultWidth,
		Height:   defaultHeight,
		XMin:     -110,
		XMax:     150,
		YMin:     -0.5,
		YMax:     0.5,
		Ticks:    DefaultTicks(),
		Selected: -1,
	}
}

// RenderStrip draws one marker per point at (PercentChange, Jitter) colored by
// its category. Outlined points use a ringed marker. An empty slice renders
// the bare frame.
func RenderStrip(points []dataset.Styled, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height < minHeight {
		opts.Height = minHeight
	}
	if opts.XMax <= opts.XMin {
		opts.XMin, opts.XMax = -110, 150
	}
	if opts.YMax <= opts.YMin {
		opts.YMin, opts.YMax = -0.5, 0.5
	}

	// No axes or built-in labels; the tick row replaces them.
	chart := linechart.New(opts.Width, opts.Height, opts.XMin, opts.XMax, opts.YMin, opts.YMax)
	chart.SetXStep(0)
	chart.SetYStep(0)

	for i, p := range points {
		if i == opts.Selected {
			continue
		}
		chart.DrawRuneWithStyle(canvas.Float64Point{X: p.PercentChange, Y: p.Jitter}, marker(p), markerStyle(p))
	}
	if opts.Selected >= 0 && opts.Selected < len(points) {
		p := points[opts.Selected]
		style := lipgloss.NewStyle().Foreground(hoverColor).Bold(true)
		chart.DrawRuneWithStyle(canvas.Float64Point{X: p.PercentChange, Y: p.Jitter}, markerSelected, style)
	}
	drawGridlines(&chart, opts.Ticks)

	var b strings.Builder
	if opts.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(titleColor).Render(opts.Title)
		b.WriteString(lipgloss.PlaceHorizontal(opts.Width, lipgloss.Center, title))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(labelColor).Render(tickRow(&chart, opts.Ticks, opts.Width)))
	b.WriteString("\n")
	b.WriteString(chart.View())
	return b.String()
}

func marker(p dataset.Styled) rune {
	if p.Outlined() {
		return markerOutlined
	}
	return markerPlain
}

func markerStyle(p dataset.Styled) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Color)))
	if p.Outlined() {
		s = s.Bold(true)
	}
	return s
}

// drawGridlines fills empty cells in each tick column; markers already on the
// canvas stay on top.
func drawGridlines(chart *linechart.Model, ticks []Tick) {
	origin := chart.Origin()
	topY := origin.Y - chart.GraphHeight()
	if topY < 0 {
		topY = 0
	}
	gridStyle := lipgloss.NewStyle().Foreground(gridColor)
	zeroStyle := lipgloss.NewStyle().Foreground(zeroColor)
	for _, t := range ticks {
		x := columnX(chart, t.Value)
		if x < origin.X || x >= chart.Width() {
			continue
		}
		style := gridStyle
		if t.Value == 0 {
			style = zeroStyle
		}
		for y := topY; y <= origin.Y; y++ {
			p := canvas.Point{X: x, Y: y}
			if chart.Canvas.Cell(p).Rune != 0 {
				continue
			}
			chart.Canvas.SetRuneWithStyle(p, '│', style)
		}
	}
}

// tickRow lays the tick labels out centred on their columns, dropping any
// label that would collide with the one before it.
func tickRow(chart *linechart.Model, ticks []Tick, width int) string {
	row := []rune(strings.Repeat(" ", width))
	next := 0
	for _, t := range ticks {
		label := []rune(t.Label)
		start := columnX(chart, t.Value) - len(label)/2
		if start < next || start < 0 || start+len(label) > width {
			continue
		}
		copy(row[start:], label)
		next = start + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}

// columnX maps a change value to its canvas column.
func columnX(chart *linechart.Model, v float64) int {
	point := canvas.Float64Point{X: v, Y: chart.ViewMinY()}
	scaled := chart.ScaleFloat64Point(point)
	p := canvas.CanvasPointFromFloat64Point(chart.Origin(), scaled)
	if chart.YStep() > 0 {
		p.X++
	}
	return p.X
}
