package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/bson"
	"github.com/zoobzio/folio/cbor"
	"github.com/zoobzio/folio/compress"
	"github.com/zoobzio/folio/json"
	"github.com/zoobzio/folio/jsonc"
	"github.com/zoobzio/folio/msgpack"
	"github.com/zoobzio/folio/yaml"
)

// formats maps format names to codec constructors.
var formats = map[string]func() folio.Codec{
	"json":    json.New,
	"jsonc":   jsonc.New,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
	"cbor":    cbor.New,
}

// extensions maps file extensions to format names.
var extensions = map[string]string{
	".json":    "json",
	".ipynb":   "json",
	".jsonc":   "jsonc",
	".yaml":    "yaml",
	".yml":     "yaml",
	".msgpack": "msgpack",
	".bson":    "bson",
	".cbor":    "cbor",
}

// compressionSuffixes maps trailing compression extensions to algorithms.
var compressionSuffixes = map[string]string{
	".zst": compress.NameZstd,
	".lz4": compress.NameLZ4,
}

// storage describes how a file is persisted.
type storage struct {
	Format     string
	Compress   string
	Passphrase string
}

// detect fills in format and compression from the file name where they were
// not given explicitly. A trailing .zst or .lz4 selects compression and is
// stripped before the format extension is read.
func detect(path string, s storage) (storage, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if algo, ok := compressionSuffixes[ext]; ok {
		if s.Compress == "" {
			s.Compress = algo
		}
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	if s.Format == "" {
		format, ok := extensions[ext]
		if !ok {
			return storage{}, fmt.Errorf("cannot infer format of %s: use --format", path)
		}
		s.Format = format
	}
	return s, nil
}

// codecFor builds the codec stack for a storage description: the wire
// format, then compression, then sealing outermost.
func codecFor(s storage) (folio.Codec, error) {
	newCodec, ok := formats[s.Format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", s.Format)
	}

	codec, err := compress.ForName(s.Compress, newCodec())
	if err != nil {
		return nil, err
	}

	if s.Passphrase != "" {
		enc, err := folio.Passphrase(s.Passphrase)
		if err != nil {
			return nil, err
		}
		codec = folio.Seal(codec, enc)
	}
	return codec, nil
}
