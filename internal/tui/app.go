package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/butterflies/internal/config"
	"github.com/jask/butterflies/internal/dataset"
)

// App is the dashboard shell. It owns the filter inputs and re-runs the
// dataset pipeline whenever they change.
type App struct {
	cfg      config.Config
	pipeline dataset.Pipeline
	criteria dataset.Criteria
	view     dataset.View

	keys      keyMap
	inputKeys inputKeyMap
	help      help.Model
	low       textinput.Model
	high      textinput.Model
	search    textinput.Model
	table     table.Model

	focus  focusArea
	width  int
	height int
	status string
	isErr  bool
}

type focusArea int

const (
	focusTable focusArea = iota
	focusLow
	focusHigh
	focusSearch
)

const (
	defaultWidth  = 110
	defaultHeight = 40
	sidebarWidth  = 30
	minMainWidth  = 40
	minTableRows  = 3
)

func New(cfg config.Config) *App {
	a := &App{
		cfg:       cfg,
		pipeline:  dataset.NewPipeline(cfg.Data.Seed, cfg.Params()),
		criteria:  cfg.Criteria(),
		keys:      newKeyMap(),
		inputKeys: newInputKeyMap(),
		help:      help.New(),
		low:       newNumberInput("-100"),
		high:      newNumberInput("150"),
		search:    textinput.New(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	a.search.Placeholder = "Species 42"
	a.search.Prompt = "/ "
	a.search.CharLimit = 32

	a.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Species", Width: 12},
			{Title: "Change", Width: 9},
			{Title: "Trend", Width: 10},
			{Title: "Sig", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(minTableRows),
	)
	a.syncInputs()
	a.refresh()
	a.resize()
	return a
}

func newNumberInput(placeholder string) textinput.Model {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = ""
	inp.CharLimit = 12
	inp.Width = 10
	return inp
}

// Criteria returns the filter currently applied.
func (a *App) Criteria() dataset.Criteria { return a.criteria }

// Summary returns the counts for the current view.
func (a *App) Summary() dataset.Summary { return a.view.Summary }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resize()
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.focus {
		case focusLow, focusHigh:
			return a.handleRangeKey(m)
		case focusSearch:
			return a.handleSearchKey(m)
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Filter):
			return a, a.focusOn(focusLow)
		case key.Matches(m, a.keys.Significant):
			a.criteria.SignificantOnly = !a.criteria.SignificantOnly
			a.refresh()
			if a.criteria.SignificantOnly {
				a.setStatus("showing significant trends only")
			} else {
				a.setStatus("showing all trends")
			}
			return a, nil
		case key.Matches(m, a.keys.Reset):
			a.criteria = a.cfg.Criteria()
			a.syncInputs()
			a.refresh()
			a.setStatus("filters reset")
			return a, nil
		case key.Matches(m, a.keys.Search):
			a.search.SetValue("")
			return a, a.focusOn(focusSearch)
		case key.Matches(m, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.resize()
			return a, nil
		}
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleRangeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.inputKeys.Cancel):
		a.syncInputs()
		a.blur()
		a.setStatus("range unchanged")
		return a, nil
	case key.Matches(m, a.inputKeys.Next):
		if a.focus == focusLow {
			return a, a.focusOn(focusHigh)
		}
		return a, a.focusOn(focusLow)
	case key.Matches(m, a.inputKeys.Apply):
		low, err := parseBound(a.low.Value())
		if err != nil {
			a.setError(fmt.Errorf("invalid range low: %w", err))
			return a, nil
		}
		high, err := parseBound(a.high.Value())
		if err != nil {
			a.setError(fmt.Errorf("invalid range high: %w", err))
			return a, nil
		}
		a.criteria.Low, a.criteria.High = low, high
		a.syncInputs()
		a.blur()
		a.refresh()
		if a.view.Summary.Shown > 0 {
			a.setStatus(fmt.Sprintf("range %s to %s", formatBound(low), formatBound(high)))
		}
		return a, nil
	}
	var cmd tea.Cmd
	if a.focus == focusLow {
		a.low, cmd = a.low.Update(m)
	} else {
		a.high, cmd = a.high.Update(m)
	}
	return a, cmd
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.inputKeys.Cancel):
		a.search.SetValue("")
		a.blur()
		return a, nil
	case key.Matches(m, a.inputKeys.Apply):
		query := strings.TrimSpace(a.search.Value())
		a.blur()
		idx, ok := dataset.Lookup(a.view.Points, query)
		if !ok {
			a.setError(fmt.Errorf("no visible species matches %q", query))
			return a, nil
		}
		a.table.SetCursor(idx)
		a.setStatus("found " + a.view.Points[idx].SpeciesID)
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return a, cmd
}

func (a *App) focusOn(f focusArea) tea.Cmd {
	a.low.Blur()
	a.high.Blur()
	a.search.Blur()
	a.table.Blur()
	a.focus = f
	switch f {
	case focusLow:
		return a.low.Focus()
	case focusHigh:
		return a.high.Focus()
	case focusSearch:
		return a.search.Focus()
	}
	a.table.Focus()
	return nil
}

func (a *App) blur() {
	_ = a.focusOn(focusTable)
}

// refresh re-runs the pipeline with the current criteria and rebuilds the
// species table.
func (a *App) refresh() {
	a.view = a.pipeline.Run(a.criteria)

	rows := make([]table.Row, 0, len(a.view.Points))
	for _, p := range a.view.Points {
		sig := ""
		if p.Significant {
			sig = "yes"
		}
		rows = append(rows, table.Row{p.SpeciesID, fmt.Sprintf("%+.1f%%", p.PercentChange), p.Trend.String(), sig})
	}
	a.table.SetRows(rows)
	if len(rows) == 0 {
		a.setStatus("no species match the current filters")
		return
	}
	switch c := a.table.Cursor(); {
	case c < 0:
		a.table.SetCursor(0)
	case c >= len(rows):
		a.table.SetCursor(len(rows) - 1)
	}
}

func (a *App) syncInputs() {
	a.low.SetValue(formatBound(a.criteria.Low))
	a.high.SetValue(formatBound(a.criteria.High))
}

// selected returns the index of the highlighted species, or -1.
func (a *App) selected() int {
	if len(a.view.Points) == 0 {
		return -1
	}
	c := a.table.Cursor()
	if c < 0 || c >= len(a.view.Points) {
		return -1
	}
	return c
}

func (a *App) setStatus(s string) {
	a.status, a.isErr = s, false
}

func (a *App) setError(err error) {
	a.status, a.isErr = "error: "+err.Error(), true
}

func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
