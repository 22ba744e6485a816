package folio

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the lowercase hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// notebookDomainKey is the BLAKE3 key for notebook fingerprints: the ASCII
// domain name zero-padded to 32 bytes. Changing it invalidates every stored
// fingerprint.
var notebookDomainKey = [32]byte{
	'f', 'o', 'l', 'i', 'o', '.', 'n', 'o', 't', 'e', 'b', 'o', 'o', 'k', 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns a keyed BLAKE3 digest of the notebook's persisted
// content: each cell's cell_type, language and source, length-prefixed.
// Outputs are not part of the digest, so two notebooks that encode to the
// same raw cells share a fingerprint whatever their wire format.
func Fingerprint(nb *Notebook) Hash {
	hasher, err := blake3.NewKeyed(notebookDomainKey[:])
	if err != nil {
		panic("folio: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var prefix [8]byte
	write := func(s string) {
		binary.BigEndian.PutUint64(prefix[:], uint64(len(s)))
		_, _ = hasher.Write(prefix[:])
		_, _ = hasher.Write([]byte(s))
	}

	raw := rawFromNotebook(nb)
	binary.BigEndian.PutUint64(prefix[:], uint64(len(raw.Cells)))
	_, _ = hasher.Write(prefix[:])
	for _, cell := range raw.Cells {
		write(cell.CellType)
		write(cell.Language)
		write(strings.Join(cell.Source, "\n"))
	}

	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h
}
