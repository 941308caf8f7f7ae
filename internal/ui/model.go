package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/channel-cross/internal/crossing"
	"github.com/ngmaloney/channel-cross/internal/log"
	"github.com/ngmaloney/channel-cross/internal/models"
	"github.com/ngmaloney/channel-cross/internal/stormglass"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching the forecast
	StateDisplay                 // Showing the classified forecast
	StateError                   // Fetch or aggregation failed
)

// saveDelay is how long thresholds must stay unchanged before they are saved
const saveDelay = 500 * time.Millisecond

// ThresholdStore persists thresholds between runs
type ThresholdStore interface {
	SaveThresholds(models.CrossingThresholds) error
	Reset() error
}

// Options configures a Model
type Options struct {
	Client     stormglass.ForecastClient
	Store      ThresholdStore // optional
	Thresholds models.CrossingThresholds
	Latitude   float64
	Longitude  float64
	Days       int
	Source     string
	Location   *time.Location // nil keeps provider offsets
	Now        func() time.Time
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error
	notice string

	client stormglass.ForecastClient
	store  ThresholdStore

	lat, lon float64
	days     int
	source   string
	loc      *time.Location
	now      func() time.Time

	// Data
	forecast   []models.DailyForecast
	fetchedAt  time.Time
	thresholds models.CrossingThresholds
	selected   int
	saveSeq    int  // bumped on every threshold change
	unsaved    bool // thresholds changed since the last save

	// Widgets
	spinner spinner.Model
	bar     progress.Model
	help    help.Model
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	bar := progress.New(
		progress.WithSolidFill(string(colorPrimary)),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		state:      StateLoading,
		client:     opts.Client,
		store:      opts.Store,
		lat:        opts.Latitude,
		lon:        opts.Longitude,
		days:       opts.Days,
		source:     opts.Source,
		loc:        opts.Location,
		now:        now,
		thresholds: opts.Thresholds.Clamped(),
		spinner:    s,
		bar:        bar,
		help:       help.New(),
	}
}

// Init starts the first forecast fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	start := m.now()
	return fetchForecast(m.client, forecastRequest{
		lat:    m.lat,
		lon:    m.lon,
		start:  start,
		end:    start.AddDate(0, 0, m.days),
		source: m.source,
		loc:    m.loc,
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case forecastFetchedMsg:
		var throttled *stormglass.ThrottledError
		if errors.As(msg.err, &throttled) && len(m.forecast) > 0 {
			m.notice = throttled.Error()
			m.state = StateDisplay
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			m.forecast = nil
			return m, nil
		}
		m.err = nil
		m.notice = ""
		m.forecast = msg.days
		m.fetchedAt = msg.fetchedAt
		m.state = StateDisplay
		return m, nil

	case saveDueMsg:
		if msg.seq != m.saveSeq || !m.unsaved {
			return m, nil
		}
		m.unsaved = false
		return m, saveThresholds(m.store, m.thresholds)

	case thresholdsSavedMsg:
		if msg.err != nil {
			log.Warnw("persisting thresholds failed", "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		if m.unsaved && m.store != nil {
			return m, tea.Sequence(saveThresholds(m.store, m.thresholds), tea.Quit)
		}
		return m, tea.Quit
	}

	switch m.state {
	case StateError:
		if key.Matches(msg, keys.Refresh) {
			return m.refresh()
		}

	case StateDisplay:
		switch {
		case key.Matches(msg, keys.Up):
			m.selected = (m.selected + len(thresholdControls) - 1) % len(thresholdControls)
		case key.Matches(msg, keys.Down):
			m.selected = (m.selected + 1) % len(thresholdControls)
		case key.Matches(msg, keys.Decrease):
			return m.setThresholds(thresholdControls[m.selected].adjust(m.thresholds, -1))
		case key.Matches(msg, keys.Increase):
			return m.setThresholds(thresholdControls[m.selected].adjust(m.thresholds, 1))
		case key.Matches(msg, keys.Defaults):
			return m.restoreDefaults()
		case key.Matches(msg, keys.Refresh):
			return m.refresh()
		}
	}

	return m, nil
}

// setThresholds applies new limits; classification happens at render time.
// The save waits until the limits have been still for saveDelay.
func (m Model) setThresholds(th models.CrossingThresholds) (tea.Model, tea.Cmd) {
	if th == m.thresholds {
		return m, nil
	}
	m.thresholds = th
	m.saveSeq++
	m.unsaved = true
	log.Debugw("thresholds changed", "thresholds", th)
	return m, scheduleSave(m.saveSeq)
}

// restoreDefaults drops any pending save and clears the stored limits
func (m Model) restoreDefaults() (tea.Model, tea.Cmd) {
	m.thresholds = models.DefaultThresholds()
	m.saveSeq++
	m.unsaved = false
	return m, resetThresholds(m.store)
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.state = StateLoading
	m.err = nil
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

// Thresholds returns the current crossing limits
func (m Model) Thresholds() models.CrossingThresholds {
	return m.thresholds
}

// Rows returns the classified, formatted forecast for the current limits
func (m Model) Rows() []crossing.Row {
	return crossing.Rows(m.forecast, m.thresholds)
}

// View renders the UI
func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}
	return ""
}

func (m Model) header() string {
	title := titleStyle.Render(fmt.Sprintf("🛥️  Channel Cross - %d-Day Marine Forecast", m.days))
	subtitle := mutedStyle.Render(fmt.Sprintf("📍 %.2f, %.2f • source %s • powered by Stormglass", m.lat, m.lon, m.source))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		"",
		fmt.Sprintf("%s Fetching %d-day forecast...", m.spinner.View(), m.days),
		helpStyle.Render("Q: Quit"),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		"",
		errorStyle.Render("✗ Error fetching forecast"),
		"",
		errorMsg,
		helpStyle.Render("R: Retry • Q: Quit"),
	)
}

// viewDisplay renders the thresholds and the forecast table
func (m Model) viewDisplay() string {
	rows := m.Rows()

	var sections []string
	sections = append(sections,
		m.header(),
		sectionHeaderStyle.Render("⚙  CROSSING CONDITIONS"),
		sectionBoxStyle.Render(renderThresholds(m.thresholds, m.selected, m.bar)),
		sectionHeaderStyle.Render("⛅ FORECAST"),
		RenderTable(rows),
		RenderSummary(rows),
	)

	if m.notice != "" {
		sections = append(sections, mutedStyle.Render("⏳ "+m.notice))
	}

	if !m.fetchedAt.IsZero() {
		sections = append(sections, mutedStyle.Render("Updated "+m.fetchedAt.Format("Jan 2, 3:04 PM")))
	}

	sections = append(sections, helpStyle.Render(m.help.View(keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
