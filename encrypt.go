package folio

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Encryptor handles encryption/decryption operations.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aesEncryptor implements AES-GCM encryption.
type aesEncryptor struct {
	gcm cipher.AEAD
}

// AES returns an AES-GCM encryptor.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encryptor, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return &aesEncryptor{gcm: gcm}, nil
}

func (e *aesEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	return seal(e.gcm, plaintext)
}

func (e *aesEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return open(e.gcm, ciphertext)
}

// Argon2Params configures Argon2id key derivation.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns recommended Argon2id parameters.
// Based on OWASP recommendations.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		SaltLen: 16,
	}
}

// passphraseEncryptor derives a fresh AES-256 key per message.
// Format: [salt][nonce][ciphertext]
type passphraseEncryptor struct {
	secret []byte
	params Argon2Params
}

// Passphrase returns an encryptor keyed by a passphrase, using default
// Argon2id parameters.
func Passphrase(secret string) (Encryptor, error) {
	return PassphraseWithParams(secret, DefaultArgon2Params())
}

// PassphraseWithParams returns a passphrase encryptor with custom Argon2id
// parameters. Data sealed with one parameter set opens only with the same set.
func PassphraseWithParams(secret string, params Argon2Params) (Encryptor, error) {
	if secret == "" {
		return nil, ErrEmptyPassphrase
	}
	return &passphraseEncryptor{secret: []byte(secret), params: params}, nil
}

func (e *passphraseEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	salt := make([]byte, e.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	gcm, err := newGCM(e.derive(salt))
	if err != nil {
		return nil, err
	}

	sealed, err := seal(gcm, plaintext)
	if err != nil {
		return nil, err
	}
	return append(salt, sealed...), nil
}

func (e *passphraseEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	saltLen := int(e.params.SaltLen)
	if len(ciphertext) < saltLen {
		return nil, ErrCiphertextShort
	}

	gcm, err := newGCM(e.derive(ciphertext[:saltLen]))
	if err != nil {
		return nil, err
	}
	return open(gcm, ciphertext[saltLen:])
}

func (e *passphraseEncryptor) derive(salt []byte) []byte {
	return argon2.IDKey(e.secret, salt, e.params.Time, e.params.Memory, e.params.Threads, 32)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal prepends a random nonce to the GCM ciphertext.
func seal(gcm cipher.AEAD, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(gcm cipher.AEAD, ciphertext []byte) ([]byte, error) {
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrCiphertextShort
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
