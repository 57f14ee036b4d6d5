package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/applog"
	"github.com/KillianMeersman/telemeter/internal/client"
	"github.com/KillianMeersman/telemeter/internal/config"
	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/parser"
	"github.com/KillianMeersman/telemeter/internal/portal"
	"github.com/KillianMeersman/telemeter/internal/session"
	"github.com/KillianMeersman/telemeter/internal/ui"
	"github.com/KillianMeersman/telemeter/internal/ui/components"
	"github.com/KillianMeersman/telemeter/internal/watcher"
)

// version is set via ldflags at release time.
var version = "dev"

// fetchBudget bounds one usage retrieval, login and retries included.
const fetchBudget = 2 * time.Minute

// Exit codes, one per failure class, so scripts can branch on them.
const (
	exitOK            = 0
	exitGeneric       = 1
	exitAuth          = 2
	exitNetwork       = 3
	exitTransient     = 4
	exitPortalChanged = 5
	exitMalformed     = 6
)

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		username    = flag.String("username", "", "portal username (overrides config)")
		jsonOut     = flag.Bool("json", false, "print the usage record as JSON")
		watch       = flag.Bool("watch", false, "keep running with a full-screen dashboard")
		lang        = flag.String("lang", "", "interface language: en, nl, fr")
		timeoutSec  = flag.Int("timeout", 0, "portal request timeout in seconds")
		cachePath   = flag.String("cache", "", "session cache path (overrides config)")
		noCache     = flag.Bool("no-cache", false, "do not persist sessions between runs")
		logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("telemeter", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(exitGeneric)
	}

	// Apply CLI overrides
	if *lang != "" {
		cfg.General.Language = *lang
	}
	if *timeoutSec > 0 {
		cfg.General.TimeoutSeconds = *timeoutSec
	}
	if *cachePath != "" {
		cfg.Cache.Path = *cachePath
	}
	if *noCache {
		cfg.Cache.Disabled = true
	}
	if *logLevel != "" {
		cfg.General.LogLevel = *logLevel
	}
	i18n.SetLanguage(cfg.General.Language)
	applog.InitStderr(cfg.General.LogLevel)

	user, password, err := config.ResolveCredentials(cfg, *username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitGeneric)
	}
	creds := portal.Credentials{Username: user, Password: password}

	store := openStore(cfg)
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}

	pc := portal.NewClient(store, cfg.Timeout())
	tm := client.New(pc, store)

	if *watch {
		runWatch(cfg, *configPath, tm, creds)
		return
	}
	runOnce(cfg, tm, creds, *jsonOut)
}

// openStore picks the session cache backend. A broken cache file must
// not block a usage check, so failures degrade to the in-memory store.
func openStore(cfg config.Config) session.Store {
	if cfg.Cache.Disabled {
		return session.NewMemoryStore()
	}
	s, err := session.OpenSQLite(cfg.CachePath())
	if err != nil {
		slog.Warn("session cache unavailable, continuing without", "path", cfg.CachePath(), "error", err)
		return session.NewMemoryStore()
	}
	return s
}

func runOnce(cfg config.Config, tm *client.Telemeter, creds portal.Credentials, jsonOut bool) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchBudget)
	defer cancel()

	rec, err := tm.GetUsage(ctx, creds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(exitGeneric)
		}
		return
	}

	printSummary(rec)
}

func printSummary(rec domain.UsageRecord) {
	now := time.Now()

	period := fmt.Sprintf("%s → %s",
		components.FormatDayMonth(rec.PeriodStart),
		components.FormatDayMonth(rec.PeriodEnd.Add(-time.Second)))
	fmt.Printf("%-12s %s · %s\n", i18n.T("period"), period,
		i18n.Tf("days_left", int(rec.UntilReset(now).Hours()/24)))

	if rec.HasQuota() {
		fmt.Printf("%-12s %s (%s)\n", i18n.T("breakdown_usage"),
			i18n.Tf("used_of",
				components.FormatBytes(rec.UsedBytes),
				components.FormatBytes(rec.TotalQuotaBytes)),
			components.FormatPercent(rec.UsedPercent()/100))
		fmt.Printf("%-12s %s\n", i18n.T("remaining"),
			components.FormatBytes(rec.RemainingBytes()))
	} else {
		fmt.Printf("%-12s %s\n", i18n.T("breakdown_usage"),
			i18n.Tf("used_unlimited", components.FormatBytes(rec.UsedBytes)))
	}

	for _, c := range rec.Categories {
		fmt.Printf("  %-10s %s\n", i18n.CategoryName(c.Name),
			components.FormatBytes(c.UsedBytes))
	}

	if rec.Squeezed {
		fmt.Printf("\n⚠ %s\n", i18n.T("squeezed"))
	}
}

func runWatch(cfg config.Config, cfgPath string, tm *client.Telemeter, creds portal.Credentials) {
	// The terminal belongs to the TUI; logs move to files.
	if closer, err := applog.InitFile(config.DefaultLogDir(), cfg.General.LogLevel); err == nil {
		defer closer.Close()
	}

	fetch := func(ctx context.Context) (*domain.UsageRecord, error) {
		rec, err := tm.GetUsage(ctx, creds)
		if err != nil {
			return nil, err
		}
		return &rec, nil
	}

	app := ui.NewApp(cfg, cfgPath, creds.Username, fetch)
	p := tea.NewProgram(app, tea.WithAltScreen())

	w := watcher.New(cfgPath, 2*time.Second, func() {
		p.Send(ui.ConfigFileChangedMsg{})
	})
	if err := w.Start(); err == nil {
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitGeneric)
	}
}

func exitCode(err error) int {
	var (
		authErr      *portal.AuthError
		netErr       *portal.NetworkError
		transientErr *portal.TransientError
		portalErr    *portal.PortalChangedError
		malformedErr *parser.MalformedDataError
	)
	switch {
	case errors.As(err, &authErr):
		return exitAuth
	case errors.As(err, &netErr):
		return exitNetwork
	case errors.As(err, &transientErr):
		return exitTransient
	case errors.As(err, &portalErr):
		return exitPortalChanged
	case errors.As(err, &malformedErr):
		return exitMalformed
	default:
		return exitGeneric
	}
}
