package folio

import "fmt"

// sealedCodec encrypts the output of an inner codec.
type sealedCodec struct {
	inner Codec
	enc   Encryptor
}

// Seal wraps a codec so persisted bytes are encrypted at rest.
// Marshal encrypts after the inner codec runs; Unmarshal decrypts before it.
// A wrong key surfaces as an Unmarshal error, which Serializer.Decode treats
// like any other malformed input.
func Seal(inner Codec, enc Encryptor) Codec {
	return &sealedCodec{inner: inner, enc: enc}
}

// ContentType returns the inner content type with a "+sealed" suffix.
func (c *sealedCodec) ContentType() string {
	return c.inner.ContentType() + "+sealed"
}

// Marshal encodes v with the inner codec and encrypts the result.
func (c *sealedCodec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	sealed, err := c.enc.Encrypt(data)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return sealed, nil
}

// Unmarshal decrypts data and decodes it with the inner codec.
func (c *sealedCodec) Unmarshal(data []byte, v any) error {
	plaintext, err := c.enc.Decrypt(data)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	return c.inner.Unmarshal(plaintext, v)
}
