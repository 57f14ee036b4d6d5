package i18n

var en = map[string]string{
	// Tabs
	"tab_overview":  "Overview",
	"tab_calendar":  "Calendar",
	"tab_breakdown": "Breakdown",

	// Status
	"loading":         "Contacting the portal…",
	"refreshing":      "Refreshing…",
	"last_updated":    "Updated %s",
	"status_error":    "error: %s",
	"status_help":     "help",
	"status_settings": "settings",
	"status_refresh":  "refresh",
	"status_quit":     "quit",

	// Overview
	"used_of":        "%s of %s used",
	"used_unlimited": "%s used",
	"remaining":      "Remaining",
	"projected":      "Projected at reset",
	"daily_avg":      "Daily average",
	"period":         "Period",
	"days_left":      "%d days until reset",
	"squeezed":       "Speed reduced until the period resets",
	"over_quota":     "Volume exhausted",

	// Categories
	"category_peak":    "Peak",
	"category_offpeak": "Off-peak",
	"category_wifree":  "Wi-Free",

	// Breakdown table
	"breakdown_category": "Category",
	"breakdown_usage":    "Usage",
	"breakdown_share":    "Share",

	// Calendar
	"weekdays":      "Mo Tu We Th Fr Sa Su",
	"busiest_day":   "Busiest day: %s (%s)",
	"no_daily_data": "The portal reported no per-day figures for this period",

	// Overlays
	"help_title":        "Key bindings",
	"help_quit":         "quit",
	"help_tabs":         "switch view",
	"help_cycle":        "cycle views",
	"help_months":       "previous / next month",
	"help_refresh":      "refresh now",
	"help_help":         "toggle help",
	"help_settings":     "settings",
	"help_close":        "close overlay",
	"settings_title":    "Settings",
	"settings_language": "Language",
	"settings_refresh":  "Refresh (min)",
	"settings_hint":     "←/→ adjust · s save · esc close",

	// Size guard
	"terminal_too_small": "Terminal too small",
	"current_size":       "Current: %dx%d",
	"min_size":           "Minimum: %dx%d",
}
