package i18n

var fr = map[string]string{
	// Tabs
	"tab_overview":  "Aperçu",
	"tab_calendar":  "Calendrier",
	"tab_breakdown": "Répartition",

	// Status
	"loading":         "Connexion au portail…",
	"refreshing":      "Actualisation…",
	"last_updated":    "Mis à jour %s",
	"status_error":    "erreur : %s",
	"status_help":     "aide",
	"status_settings": "paramètres",
	"status_refresh":  "actualiser",
	"status_quit":     "quitter",

	// Overview
	"used_of":        "%s sur %s utilisés",
	"used_unlimited": "%s utilisés",
	"remaining":      "Restant",
	"projected":      "Projection à la fin",
	"daily_avg":      "Moyenne journalière",
	"period":         "Période",
	"days_left":      "%d jours avant la remise à zéro",
	"squeezed":       "Débit réduit jusqu'à la fin de la période",
	"over_quota":     "Volume épuisé",

	// Categories
	"category_peak":    "Heures pleines",
	"category_offpeak": "Heures creuses",
	"category_wifree":  "Wi-Free",

	// Breakdown table
	"breakdown_category": "Catégorie",
	"breakdown_usage":    "Consommation",
	"breakdown_share":    "Part",

	// Calendar
	"weekdays":      "Lu Ma Me Je Ve Sa Di",
	"busiest_day":   "Jour le plus chargé : %s (%s)",
	"no_daily_data": "Le portail n'a fourni aucun détail journalier pour cette période",

	// Overlays
	"help_title":        "Raccourcis",
	"help_quit":         "quitter",
	"help_tabs":         "changer de vue",
	"help_cycle":        "vue suivante",
	"help_months":       "mois précédent / suivant",
	"help_refresh":      "actualiser",
	"help_help":         "afficher l'aide",
	"help_settings":     "paramètres",
	"help_close":        "fermer",
	"settings_title":    "Paramètres",
	"settings_language": "Langue",
	"settings_refresh":  "Actualisation (min)",
	"settings_hint":     "←/→ régler · s enregistrer · esc fermer",

	// Size guard
	"terminal_too_small": "Terminal trop petit",
	"current_size":       "Actuel : %dx%d",
	"min_size":           "Minimum : %dx%d",
}
