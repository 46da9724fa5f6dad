package hrid

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
)

// frame returns the identifier's unambiguous byte framing: a uvarint length
// prefix followed by the raw UTF-8 bytes. The prefix keeps adjacent fields
// distinguishable when several values feed one accumulator, and the encoding
// is identical on every platform, so digests are stable across process runs.
func (id ID) frame() []byte {
	buf := make([]byte, 0, binary.MaxVarintLen64+len(id.s))
	buf = binary.AppendUvarint(buf, uint64(len(id.s)))
	return append(buf, id.s...)
}

// HashInto feeds the identifier's framed bytes into h. It works with any
// hash.Hash, e.g. sha256.New or blake2b.New256, and writes the same bytes
// for equal identifiers on every run.
func (id ID) HashInto(h hash.Hash) {
	h.Write(id.frame())
}

// Sum256 returns the SHA-256 digest of the identifier's framed bytes. It is
// a convenience for content addressing with the default hash; use HashInto
// to contribute to a composite digest or a different hash function.
func (id ID) Sum256() [sha256.Size]byte {
	return sha256.Sum256(id.frame())
}
