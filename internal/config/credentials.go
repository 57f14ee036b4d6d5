package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Environment variables consulted before the config file. They let
// scripts supply credentials without writing them to disk.
const (
	EnvUsername = "TELEMETER_USERNAME"
	EnvPassword = "TELEMETER_PASSWORD"
)

// ResolveCredentials returns the portal username and password,
// consulting in order: the explicit flag value, the environment, the
// config file and finally an interactive prompt. The password is
// handed to the caller and nowhere else; it is never written back to
// the config or logged.
func ResolveCredentials(cfg Config, flagUsername string) (username, password string, err error) {
	username = flagUsername
	if username == "" {
		username = os.Getenv(EnvUsername)
	}
	if username == "" {
		username = cfg.Account.Username
	}

	password = os.Getenv(EnvPassword)
	if password == "" {
		password = cfg.Account.Password
	}

	if username != "" && password != "" {
		return username, password, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no credentials: set %s and %s, or add an [account] section to %s",
			EnvUsername, EnvPassword, DefaultPath())
	}

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Fprint(os.Stderr, "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}

	if username == "" || password == "" {
		return "", "", fmt.Errorf("username and password are both required")
	}
	return username, password, nil
}
