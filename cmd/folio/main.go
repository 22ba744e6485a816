// folio reads, converts and inspects notebook files.
//
// Usage:
//
//	folio cat FILE
//	folio convert IN OUT
//	folio outline FILE
//	folio fingerprint FILE...
//	folio validate FILE...
//
// Formats are inferred from file extensions (.json, .ipynb, .jsonc, .yaml,
// .yml, .msgpack, .bson, .cbor, optionally followed by .zst or .lz4) unless
// given with --format, --from or --to. Settings may also come from the
// environment or a .env file: FOLIO_FORMAT, FOLIO_COMPRESS,
// FOLIO_PASSPHRASE and FOLIO_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{
		cfg:    loadConfig(os.Getenv),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// errUsage marks errors that were already reported with usage text.
var errUsage = errors.New("usage")

// app carries the process configuration and output streams.
type app struct {
	cfg    config
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"cat", "print cells and their outputs", (*app).cat},
	{"convert", "rewrite a notebook in another format", (*app).convert},
	{"outline", "print the markdown heading outline", (*app).outline},
	{"fingerprint", "print the content fingerprint of each file", (*app).fingerprint},
	{"validate", "strictly decode each file and report corrupt input", (*app).validate},
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return nil
	}

	for _, cmd := range commands {
		if cmd.name == name {
			return cmd.run(a, ctx, args[1:])
		}
	}

	fmt.Fprintf(a.stderr, "unknown command %q\n\n", name)
	a.usage()
	return errUsage
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "Usage: folio <command> [flags] FILE...")
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(a.stderr, "  %-12s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, `Run "folio <command> --help" for command flags.`)
}

// setupLogger installs a text logger on stderr at the given level.
func (a *app) setupLogger(levelName string) error {
	level, err := parseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}
