package gjson

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"github.com/pkg/errors"
)

// ByteString marshals to JSON as a hex string. Explorer-facing
// identifiers (box ids, token ids, serialized registers) use it.
type ByteString []byte

func (b ByteString) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

func (b *ByteString) UnmarshalJSON(buf []byte) error {
	var h string
	if err := json.Unmarshal(buf, &h); err != nil {
		return errors.WithStack(err)
	}
	bs, err := hex.DecodeString(h)
	if err != nil {
		return errors.WithStack(err)
	}
	*b = bs
	return nil
}

func (b ByteString) String() string {
	return hex.EncodeToString(b)
}

// Base64String marshals to JSON as standard base64. The assembler
// service takes register payloads in this form.
type Base64String []byte

func (b Base64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64String) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return errors.WithStack(err)
	}
	bs, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errors.WithStack(err)
	}
	*b = bs
	return nil
}
