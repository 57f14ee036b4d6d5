package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

type Notification struct {
	Message   string
	CreatedAt time.Time
}

// NotificationManager holds one transient banner message at a time.
type NotificationManager struct {
	active *Notification
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{}
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.active = &Notification{
		Message:   msg,
		CreatedAt: time.Now(),
	}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil {
		return nil
	}
	if time.Since(nm.active.CreatedAt) > 5*time.Second {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && time.Since(nm.active.CreatedAt) > 5*time.Second {
		nm.active = nil
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.ColorMauve)

	return style.Render(n.Message)
}
