// Package testing provides test utilities for folio.
package testing

import (
	"testing"

	"github.com/zoobzio/folio"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey(_ testing.TB) []byte {
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(t testing.TB) folio.Encryptor {
	t.Helper()
	enc, err := folio.AES(TestKey(t))
	if err != nil {
		t.Fatalf("folio.AES() error: %v", err)
	}
	return enc
}

// TestArgon2Params returns cheap key derivation parameters for tests.
func TestArgon2Params() folio.Argon2Params {
	return folio.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16}
}

// TestPassphrase returns a passphrase encryptor with cheap parameters.
func TestPassphrase(t testing.TB, secret string) folio.Encryptor {
	t.Helper()
	enc, err := folio.PassphraseWithParams(secret, TestArgon2Params())
	if err != nil {
		t.Fatalf("folio.PassphraseWithParams() error: %v", err)
	}
	return enc
}

// SampleJSON is a persisted notebook exercising every decode rule: joined
// source lines, an unknown cell_type, text/plain outputs and opaque payloads.
const SampleJSON = `{
  "cells": [
    {
      "cell_type": "markdown",
      "language": "markdown",
      "source": ["# Analysis\n", "\n", "Loads the data."]
    },
    {
      "cell_type": "code",
      "language": "python",
      "source": ["import math\n", "math.sqrt(16)"],
      "outputs": [
        {"data": {"text/plain": ["4.0"]}},
        {"data": {"image/png": "iVBORw0KGgo="}},
        {"data": null}
      ]
    },
    {
      "cell_type": "raw",
      "language": "text",
      "source": ["## Appendix"]
    }
  ]
}`

// SampleNotebook returns the notebook SampleJSON decodes to.
func SampleNotebook() *folio.Notebook {
	code := folio.NewCodeCell("import math\nmath.sqrt(16)")
	code.Outputs = []folio.Output{
		{Items: []folio.OutputItem{folio.TextItem("4.0")}},
		{},
	}
	return &folio.Notebook{Cells: []folio.Cell{
		folio.NewMarkupCell("# Analysis\n\nLoads the data."),
		code,
		folio.NewMarkupCell("## Appendix"),
	}}
}

// EncodableNotebook returns a notebook whose cells survive an encode then
// decode unchanged: single-line content with the decode-time languages.
func EncodableNotebook() *folio.Notebook {
	return &folio.Notebook{Cells: []folio.Cell{
		folio.NewMarkupCell("# Title"),
		folio.NewCodeCell("print('hello <world> & \"friends\"')"),
		folio.NewCodeCell(""),
		folio.NewMarkupCell("naïve café ✓"),
	}}
}

// EqualCells reports whether two notebooks hold the same cells, ignoring
// outputs.
func EqualCells(a, b *folio.Notebook) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		x, y := a.Cells[i], b.Cells[i]
		if x.Kind != y.Kind || x.Content != y.Content || x.Language != y.Language {
			return false
		}
	}
	return true
}
