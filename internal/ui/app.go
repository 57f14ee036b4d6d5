package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/config"
	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/ui/overlays"
	"github.com/KillianMeersman/telemeter/internal/ui/views"
)

type ViewType int

const (
	ViewOverview ViewType = iota
	ViewCalendar
	ViewBreakdown
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
)

// TickMsg triggers a periodic usage refresh.
type TickMsg time.Time

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// ConfigFileChangedMsg is sent from outside the program when the
// config file changes on disk.
type ConfigFileChangedMsg struct{}

// usageMsg carries the result of a fetch round-trip.
type usageMsg struct {
	record *domain.UsageRecord
	err    error
	at     time.Time
}

// FetchFunc retrieves a fresh usage record. It owns login, caching and
// retries; the UI only sees the outcome.
type FetchFunc func(ctx context.Context) (*domain.UsageRecord, error)

// fetchBudget bounds one full fetch round-trip, login included.
const fetchBudget = 2 * time.Minute

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	overviewView  *views.OverviewView
	calendarView  *views.CalendarView
	breakdownView *views.BreakdownView

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay

	// Shared data
	record    *domain.UsageRecord
	lastFetch time.Time
	lastErr   string

	Config     config.Config
	ConfigPath string
	Username   string

	fetch FetchFunc

	// Animation state
	animTick uint

	notifications *NotificationManager

	// Terminal
	width  int
	height int

	// State
	ready      bool
	refreshing bool
}

func NewApp(cfg config.Config, cfgPath, username string, fetch FetchFunc) App {
	i18n.SetLanguage(cfg.General.Language)

	return App{
		activeView:    ViewOverview,
		overlay:       OverlayNone,
		Config:        cfg,
		ConfigPath:    cfgPath,
		Username:      username,
		fetch:         fetch,
		overviewView:  views.NewOverviewView(),
		calendarView:  views.NewCalendarView(),
		breakdownView: views.NewBreakdownView(),
		helpOverlay:   overlays.NewHelpOverlay(),
		notifications: NewNotificationManager(),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("telemeter"),
		a.refresh,
		doBlink(),
	)
}

// refresh runs one fetch round-trip. Used as a tea.Cmd.
func (a App) refresh() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), fetchBudget)
	defer cancel()

	rec, err := a.fetch(ctx)
	return usageMsg{record: rec, err: err, at: time.Now()}
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
