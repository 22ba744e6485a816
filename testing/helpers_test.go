package testing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/zoobzio/folio"
)

type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func TestTestKey(t *testing.T) {
	key := TestKey(t)
	if len(key) != 32 {
		t.Errorf("TestKey() length = %d, want 32", len(key))
	}
}

func TestTestEncryptor(t *testing.T) {
	enc := TestEncryptor(t)
	if enc == nil {
		t.Fatal("TestEncryptor() should not return nil")
	}

	// Verify it works
	plaintext := []byte("test")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Errorf("Encrypt() error: %v", err)
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Errorf("Decrypt() error: %v", err)
	}

	if string(decrypted) != string(plaintext) {
		t.Errorf("round-trip failed")
	}
}

func TestTestPassphrase(t *testing.T) {
	enc := TestPassphrase(t, "secret")

	ciphertext, err := enc.Encrypt([]byte("test"))
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil || string(decrypted) != "test" {
		t.Errorf("Decrypt() = %q, %v", decrypted, err)
	}
}

func TestSampleJSON_DecodesToSampleNotebook(t *testing.T) {
	s, err := folio.NewSerializer(jsonCodec{})
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}

	got := s.Decode(context.Background(), []byte(SampleJSON))
	want := SampleNotebook()

	if !EqualCells(got, want) {
		t.Fatalf("Decode(SampleJSON) = %+v, want %+v", got.Cells, want.Cells)
	}
	if got.OutputCount() != want.OutputCount() {
		t.Errorf("OutputCount() = %d, want %d", got.OutputCount(), want.OutputCount())
	}
	if len(got.Cells[1].Outputs) != len(want.Cells[1].Outputs) {
		t.Errorf("len(Outputs) = %d, want %d", len(got.Cells[1].Outputs), len(want.Cells[1].Outputs))
	}
}

func TestEqualCells(t *testing.T) {
	a := EncodableNotebook()
	b := EncodableNotebook()
	if !EqualCells(a, b) {
		t.Error("EqualCells() should match identical notebooks")
	}

	b.Cells[0].Content = "changed"
	if EqualCells(a, b) {
		t.Error("EqualCells() should detect content changes")
	}

	if EqualCells(a, &folio.Notebook{}) {
		t.Error("EqualCells() should detect length changes")
	}
}
