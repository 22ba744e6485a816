package folio

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrDocumentShape indicates decoded input is not a notebook document:
	// the top level is not a mapping or its cells are not an array.
	ErrDocumentShape = errors.New("unexpected document shape")

	// ErrSchema indicates the raw types disagree on a field's wire name.
	ErrSchema = errors.New("schema mismatch")

	// ErrInvalidKeySize indicates an encryption key has invalid size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrEmptyPassphrase indicates a passphrase encryptor was given no secret.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrCiphertextShort indicates sealed data is shorter than its header.
	ErrCiphertextShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed indicates sealed data could not be opened.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// SchemaError reports a raw type field whose struct tags disagree.
type SchemaError struct {
	Err    error  // Underlying sentinel error (ErrSchema)
	Type   string // Raw type name
	Field  string // Go field name
	Format string // Format whose tag is missing or different
}

func (e *SchemaError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("%s: %s.%s (%s tag)", e.Err.Error(), e.Type, e.Field, e.Format)
	}
	return fmt.Sprintf("%s: %s.%s", e.Err.Error(), e.Type, e.Field)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
