package sigma

import (
	"fmt"
	"github.com/arkadda/seri/testutil"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEncodeLong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int64
		hex   string
	}{
		{0, "0500"},
		{1, "0502"},
		{-1, "0501"},
		{4, "0508"},
		{63, "057e"},
		{64, "058001"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.value), func(t *testing.T) {
			testutil.RequireEqualHexBytes(t, tt.hex, EncodeLong(tt.value))
		})
	}
}

func TestEncodeByteColl(t *testing.T) {
	t.Parallel()

	testutil.RequireEqualHexBytes(t, "0e00", EncodeByteColl(nil))
	testutil.RequireEqualHexBytes(t, "0e03010203", EncodeByteColl([]byte{1, 2, 3}))
}

func TestLongRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, -1, 1000000000, -1000000000, 1616515200000} {
		dec, err := DecodeLong(EncodeLong(v))
		require.NoError(t, err)
		require.Equal(t, v, dec)
	}
}

func TestLongCollRoundTrip(t *testing.T) {
	t.Parallel()

	a, b, err := DecodeLongPair(EncodeLongColl(1000000000, 100000000))
	require.NoError(t, err)
	require.EqualValues(t, 1000000000, a)
	require.EqualValues(t, 100000000, b)
}

func TestByteCollRoundTrip(t *testing.T) {
	t.Parallel()

	in := []byte("1000000000,1616515200000,a fine rug")
	out, err := DecodeByteColl(EncodeByteColl(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"wrong tag", []byte{0x04, 0x00}},
		{"truncated coll", []byte{0x0e, 0x05, 0x01}},
		{"truncated pair", []byte{0x11, 0x02, 0x02}},
		{"oversized count", []byte{0x11, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x3f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLong(tt.buf); err == nil {
				_, _, err = DecodeLongPair(tt.buf)
				require.Error(t, err)
			}
			_, err := DecodeByteColl(tt.buf)
			require.Error(t, err)
		})
	}
}
