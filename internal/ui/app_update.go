package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/config"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			return a, doTick(a.Config.RefreshInterval())
		}
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		return a, doBlink()

	case TickMsg:
		a.notifications.Expire()
		a.refreshing = true
		return a, tea.Batch(
			a.refresh,
			doTick(a.Config.RefreshInterval()),
		)

	case usageMsg:
		a.refreshing = false
		if msg.err != nil {
			// Keep showing the stale record; the status bar carries
			// the error.
			a.lastErr = msg.err.Error()
			a.notifications.SetMessage(a.lastErr)
			return a, nil
		}
		a.lastErr = ""
		a.record = msg.record
		a.lastFetch = msg.at
		a.setRecordOnViews()
		return a, nil

	case overlays.ConfigChangedMsg:
		a.Config = msg.Config
		i18n.SetLanguage(a.Config.General.Language)
		return a, nil

	case ConfigFileChangedMsg:
		cfg, err := config.Load(a.ConfigPath)
		if err != nil {
			a.notifications.SetMessage("config: " + err.Error())
			return a, nil
		}
		a.Config = cfg
		i18n.SetLanguage(cfg.General.Language)
		a.notifications.SetMessage("Config reloaded")
		return a, nil
	}

	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewOverview:
		cmd = a.overviewView.Update(msg)
	case ViewCalendar:
		cmd = a.calendarView.Update(msg)
	case ViewBreakdown:
		cmd = a.breakdownView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewOverview
	case "2":
		a.activeView = ViewCalendar
	case "3":
		a.activeView = ViewBreakdown
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.ConfigPath)
		a.overlay = OverlaySettings
	case "r":
		a.refreshing = true
		return a, a.refresh
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?", "q":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) setRecordOnViews() {
	a.overviewView.SetRecord(a.record)
	a.calendarView.SetRecord(a.record)
	a.breakdownView.SetRecord(a.record)
}

func (a *App) propagateAnimTick() {
	a.overviewView.AnimTick = a.animTick
	a.calendarView.AnimTick = a.animTick
	a.breakdownView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
}
