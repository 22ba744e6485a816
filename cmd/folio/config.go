package main

import (
	"fmt"
	"log/slog"
	"strings"
)

// config holds settings read from the environment. Flags override it.
type config struct {
	Format     string
	Compress   string
	Passphrase string
	LogLevel   string
}

// loadConfig reads FOLIO_* settings through getenv.
func loadConfig(getenv func(string) string) config {
	return config{
		Format:     strings.ToLower(strings.TrimSpace(getenv("FOLIO_FORMAT"))),
		Compress:   strings.ToLower(strings.TrimSpace(getenv("FOLIO_COMPRESS"))),
		Passphrase: getenv("FOLIO_PASSPHRASE"),
		LogLevel:   firstNonEmpty(strings.TrimSpace(getenv("FOLIO_LOG_LEVEL")), "warn"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseLevel maps a level name to a slog level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
