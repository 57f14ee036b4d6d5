package i18n

var nl = map[string]string{
	// Tabs
	"tab_overview":  "Overzicht",
	"tab_calendar":  "Kalender",
	"tab_breakdown": "Verdeling",

	// Status
	"loading":         "Portaal wordt gecontacteerd…",
	"refreshing":      "Vernieuwen…",
	"last_updated":    "Bijgewerkt %s",
	"status_error":    "fout: %s",
	"status_help":     "hulp",
	"status_settings": "instellingen",
	"status_refresh":  "vernieuwen",
	"status_quit":     "afsluiten",

	// Overview
	"used_of":        "%s van %s verbruikt",
	"used_unlimited": "%s verbruikt",
	"remaining":      "Resterend",
	"projected":      "Verwacht bij reset",
	"daily_avg":      "Daggemiddelde",
	"period":         "Periode",
	"days_left":      "%d dagen tot reset",
	"squeezed":       "Snelheid verlaagd tot de periode herstart",
	"over_quota":     "Volume opgebruikt",

	// Categories
	"category_peak":    "Piek",
	"category_offpeak": "Dal",
	"category_wifree":  "Wi-Free",

	// Breakdown table
	"breakdown_category": "Categorie",
	"breakdown_usage":    "Verbruik",
	"breakdown_share":    "Aandeel",

	// Calendar
	"weekdays":      "Ma Di Wo Do Vr Za Zo",
	"busiest_day":   "Drukste dag: %s (%s)",
	"no_daily_data": "Het portaal gaf geen dagcijfers voor deze periode",

	// Overlays
	"help_title":        "Sneltoetsen",
	"help_quit":         "afsluiten",
	"help_tabs":         "wissel weergave",
	"help_cycle":        "weergaves doorlopen",
	"help_months":       "vorige / volgende maand",
	"help_refresh":      "nu vernieuwen",
	"help_help":         "hulp tonen/verbergen",
	"help_settings":     "instellingen",
	"help_close":        "overlay sluiten",
	"settings_title":    "Instellingen",
	"settings_language": "Taal",
	"settings_refresh":  "Vernieuwen (min)",
	"settings_hint":     "←/→ aanpassen · s opslaan · esc sluiten",

	// Size guard
	"terminal_too_small": "Terminal te klein",
	"current_size":       "Huidig: %dx%d",
	"min_size":           "Minimum: %dx%d",
}
