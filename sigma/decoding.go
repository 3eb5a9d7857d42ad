package sigma

import (
	"encoding/binary"
	"github.com/pkg/errors"
)

var ErrMalformedValue = errors.New("mal-formed register value")

func DecodeLong(buf []byte) (int64, error) {
	if len(buf) < 2 || buf[0] != TypeLong {
		return 0, errors.WithStack(ErrMalformedValue)
	}
	v, n := readZigZag(buf[1:])
	if n <= 0 {
		return 0, errors.WithStack(ErrMalformedValue)
	}
	return v, nil
}

func DecodeLongColl(buf []byte) ([]int64, error) {
	if len(buf) < 2 || buf[0] != TypeLongColl {
		return nil, errors.WithStack(ErrMalformedValue)
	}
	buf = buf[1:]
	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, errors.WithStack(ErrMalformedValue)
	}
	buf = buf[n:]

	// every element takes at least one byte, so a count past the
	// remaining buffer cannot be satisfied
	if count > uint64(len(buf)) {
		return nil, errors.WithStack(ErrMalformedValue)
	}

	vs := make([]int64, count)
	for i := range vs {
		v, n := readZigZag(buf)
		if n <= 0 {
			return nil, errors.WithStack(ErrMalformedValue)
		}
		vs[i] = v
		buf = buf[n:]
	}
	return vs, nil
}

// DecodeLongPair reads a two-element integer collection, the layout of
// the (bidAmount, bidStep) register.
func DecodeLongPair(buf []byte) (int64, int64, error) {
	vs, err := DecodeLongColl(buf)
	if err != nil {
		return 0, 0, err
	}
	if len(vs) != 2 {
		return 0, 0, errors.Wrap(ErrMalformedValue, "expected a pair")
	}
	return vs[0], vs[1], nil
}

func DecodeByteColl(buf []byte) ([]byte, error) {
	if len(buf) < 2 || buf[0] != TypeByteColl {
		return nil, errors.WithStack(ErrMalformedValue)
	}
	buf = buf[1:]
	size, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, errors.WithStack(ErrMalformedValue)
	}
	buf = buf[n:]
	if uint64(len(buf)) < size {
		return nil, errors.WithStack(ErrMalformedValue)
	}
	return buf[:size], nil
}

func readZigZag(buf []byte) (int64, int) {
	u, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, n
	}
	return int64(u>>1) ^ -int64(u&1), n
}
