package gcrypto

import (
	"bytes"
	"encoding/hex"
	"golang.org/x/crypto/blake2b"
)

type Hash []byte

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h, other)
}

func Blake256(in []byte) Hash {
	buf := blake2b.Sum256(in)
	return buf[:]
}

// Checksum returns the four-byte address checksum of in.
func Checksum(in []byte) []byte {
	return Blake256(in)[:4]
}
