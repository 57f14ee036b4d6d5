package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
	"github.com/KillianMeersman/telemeter/internal/ui/components"
)

const (
	minWidth  = 80
	minHeight = 24
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("loading")
	}

	if a.width < minWidth || a.height < minHeight {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorAmber).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height)+"\n"+
					i18n.Tf("min_size", minWidth, minHeight),
			),
		)
	}

	if a.overlay != OverlayNone {
		overlay := a.renderOverlay()
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			overlay,
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30

	tabBar := a.renderTabs()
	statusBar := a.renderStatusBar()

	contentHeight := a.height - 4 // 2 tab + 2 status
	if contentHeight < 5 {
		contentHeight = 5
	}

	content := a.renderActiveView(contentHeight, compact)
	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	banner := a.notifications.RenderBanner(a.width)
	if banner != "" {
		return tabBar + "\n" + content + "\n" + banner
	}

	return tabBar + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	viewNames := []string{
		i18n.T("tab_overview"),
		i18n.T("tab_calendar"),
		i18n.T("tab_breakdown"),
	}

	return components.TabBar{
		ViewNames:   viewNames,
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Username:    a.Username,
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewOverview:
		return a.overviewView.Render(a.width, contentHeight, compact)
	case ViewCalendar:
		return a.calendarView.Render(a.width, contentHeight, compact)
	case ViewBreakdown:
		return a.breakdownView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	return components.StatusBar{
		Width:       a.width,
		Refreshing:  a.refreshing,
		Tick:        a.animTick,
		LastUpdated: a.lastFetch,
		Err:         a.lastErr,
	}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	}
	return theme.CardStyle.Width(60).Render("")
}
