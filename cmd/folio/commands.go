package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/outline"
)

// readFlags are shared by the commands that only read notebooks.
type readFlags struct {
	format     string
	compress   string
	passphrase string
	logLevel   string
}

func (a *app) readFlagSet(name string) (*pflag.FlagSet, *readFlags) {
	rf := &readFlags{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVarP(&rf.format, "format", "f", a.cfg.Format, "input format (json, jsonc, yaml, msgpack, bson, cbor)")
	fs.StringVar(&rf.compress, "compress", a.cfg.Compress, "input compression (none, zstd, lz4)")
	fs.StringVar(&rf.passphrase, "passphrase", a.cfg.Passphrase, "passphrase the input was sealed with")
	fs.StringVar(&rf.logLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	return fs, rf
}

// parse parses flags and sets up logging. ok is false when the command
// should stop, either because help was printed or because of err.
func (a *app) parse(fs *pflag.FlagSet, args []string, logLevel *string) (ok bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, errUsage
	}
	if err := a.setupLogger(*logLevel); err != nil {
		return false, err
	}
	return true, nil
}

func (rf *readFlags) storage() storage {
	return storage{Format: rf.format, Compress: rf.compress, Passphrase: rf.passphrase}
}

// serializerFor returns a serializer for the codec. Sealed codecs carry a
// key, so they bypass the shared registry.
func serializerFor(codec folio.Codec, sealed bool) (*folio.Serializer, error) {
	if sealed {
		return folio.NewSerializer(codec)
	}
	return folio.Use(codec)
}

// load reads and decodes one file. Strict decoding surfaces parse errors;
// otherwise malformed input yields an empty notebook.
func (a *app) load(ctx context.Context, path string, s storage, strict bool) (*folio.Notebook, error) {
	s, err := detect(path, s)
	if err != nil {
		return nil, err
	}
	codec, err := codecFor(s)
	if err != nil {
		return nil, err
	}
	serializer, err := serializerFor(codec, s.Passphrase != "")
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("read notebook", "path", path, "content_type", codec.ContentType(), "size", len(data))

	if strict {
		nb, err := serializer.DecodeStrict(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nb, nil
	}

	nb := serializer.Decode(ctx, data)
	if len(nb.Cells) == 0 && len(data) > 0 {
		a.logger.Warn("notebook decoded with no cells", "path", path)
	}
	return nb, nil
}

func (a *app) cat(ctx context.Context, args []string) error {
	fs, rf := a.readFlagSet("cat")
	if ok, err := a.parse(fs, args, &rf.logLevel); !ok {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "usage: folio cat [flags] FILE")
		return errUsage
	}

	nb, err := a.load(ctx, fs.Arg(0), rf.storage(), false)
	if err != nil {
		return err
	}

	for i, cell := range nb.Cells {
		fmt.Fprintf(a.stdout, "[%d] %s (%s)\n", i, cell.Kind, cell.Language)
		for _, line := range strings.Split(cell.Content, "\n") {
			fmt.Fprintf(a.stdout, "    %s\n", line)
		}
		for _, item := range cell.Items() {
			fmt.Fprintf(a.stdout, "  > %s\n", item.Text)
		}
	}
	return nil
}

func (a *app) convert(ctx context.Context, args []string) error {
	var from, to storage
	var logLevel string

	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&from.Format, "from", a.cfg.Format, "input format")
	fs.StringVar(&from.Compress, "from-compress", "", "input compression (none, zstd, lz4)")
	fs.StringVar(&from.Passphrase, "from-passphrase", "", "passphrase the input was sealed with")
	fs.StringVar(&to.Format, "to", "", "output format")
	fs.StringVar(&to.Compress, "compress", a.cfg.Compress, "output compression (none, zstd, lz4)")
	fs.StringVar(&to.Passphrase, "passphrase", a.cfg.Passphrase, "passphrase to seal the output with")
	fs.StringVar(&logLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	if ok, err := a.parse(fs, args, &logLevel); !ok {
		return err
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(a.stderr, "usage: folio convert [flags] IN OUT")
		return errUsage
	}
	in, out := fs.Arg(0), fs.Arg(1)

	nb, err := a.load(ctx, in, from, true)
	if err != nil {
		return err
	}

	to, err = detect(out, to)
	if err != nil {
		return err
	}
	codec, err := codecFor(to)
	if err != nil {
		return err
	}
	serializer, err := serializerFor(codec, to.Passphrase != "")
	if err != nil {
		return err
	}

	data, err := serializer.Encode(ctx, nb)
	if err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	a.logger.Info("converted notebook",
		"in", in,
		"out", out,
		"content_type", codec.ContentType(),
		"cells", len(nb.Cells),
		"size", len(data),
	)
	return nil
}

func (a *app) outline(ctx context.Context, args []string) error {
	fs, rf := a.readFlagSet("outline")
	if ok, err := a.parse(fs, args, &rf.logLevel); !ok {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "usage: folio outline [flags] FILE")
		return errUsage
	}

	nb, err := a.load(ctx, fs.Arg(0), rf.storage(), false)
	if err != nil {
		return err
	}

	for _, h := range outline.Build(nb) {
		fmt.Fprintf(a.stdout, "%s- %s [cell %d]\n", strings.Repeat("  ", h.Level-1), h.Title, h.Cell)
	}
	return nil
}

func (a *app) fingerprint(ctx context.Context, args []string) error {
	fs, rf := a.readFlagSet("fingerprint")
	if ok, err := a.parse(fs, args, &rf.logLevel); !ok {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.stderr, "usage: folio fingerprint [flags] FILE...")
		return errUsage
	}

	for _, path := range fs.Args() {
		nb, err := a.load(ctx, path, rf.storage(), false)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s  %s\n", folio.Fingerprint(nb), path)
	}
	return nil
}

// errInvalid reports that at least one file failed validation.
var errInvalid = errors.New("validation failed")

func (a *app) validate(ctx context.Context, args []string) error {
	fs, rf := a.readFlagSet("validate")
	if ok, err := a.parse(fs, args, &rf.logLevel); !ok {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.stderr, "usage: folio validate [flags] FILE...")
		return errUsage
	}

	failed := 0
	for _, path := range fs.Args() {
		nb, err := a.load(ctx, path, rf.storage(), true)
		if err != nil {
			a.logger.Error("invalid notebook", "path", path, "error", err)
			fmt.Fprintf(a.stdout, "FAIL %s\n", path)
			failed++
			continue
		}
		fmt.Fprintf(a.stdout, "ok   %s (%d cells, %d outputs)\n", path, len(nb.Cells), nb.OutputCount())
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errInvalid, failed, fs.NArg())
	}
	return nil
}
