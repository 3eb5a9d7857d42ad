// Package sigma implements the subset of the chain's register-value
// serialization the auction client needs: 64-bit integers, integer
// collections and byte collections. Integers are zigzag-encoded VLQs
// behind a one-byte type tag.
package sigma

import (
	"encoding/binary"
)

const (
	TypeLong     = 0x05
	TypeByteColl = 0x0e
	TypeLongColl = 0x11
)

func EncodeLong(v int64) []byte {
	buf := make([]byte, 1, 1+binary.MaxVarintLen64)
	buf[0] = TypeLong
	return appendZigZag(buf, v)
}

func EncodeLongColl(vs ...int64) []byte {
	buf := make([]byte, 1, 2+len(vs)*binary.MaxVarintLen64)
	buf[0] = TypeLongColl
	buf = appendUvarint(buf, uint64(len(vs)))
	for _, v := range vs {
		buf = appendZigZag(buf, v)
	}
	return buf
}

func EncodeByteColl(b []byte) []byte {
	buf := make([]byte, 1, 2+len(b))
	buf[0] = TypeByteColl
	buf = appendUvarint(buf, uint64(len(b)))
	return append(buf, b...)
}

func appendZigZag(buf []byte, v int64) []byte {
	return appendUvarint(buf, uint64((v<<1)^(v>>63)))
}

func appendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}
