package chain

import (
	"bytes"
	"encoding/json"
	"github.com/arkadda/seri/gcrypto"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	AddressTypeP2PK = 0x01
	AddressTypeP2SH = 0x02
	AddressTypeP2S  = 0x03

	checksumLen = 4
)

var p2pkTreePrefix = []byte{0x00, 0x08, 0xcd}

// Address is a chain address: a one-byte network/type prefix, a body
// (the compressed public key for P2PK, the script bytes for P2S) and a
// four-byte blake2b checksum in its text form.
type Address struct {
	Prefix byte
	Body   []byte
}

func NewAddress(prefix byte, body []byte) *Address {
	return &Address{
		Prefix: prefix,
		Body:   body,
	}
}

func NewP2PKAddress(key *btcec.PublicKey, network *Network) *Address {
	return NewAddress(network.Prefix|AddressTypeP2PK, key.SerializeCompressed())
}

func NewAddressFromString(str string) (*Address, error) {
	raw := base58.Decode(str)
	if len(raw) < 1+checksumLen {
		return nil, errors.New("address too short")
	}

	content := raw[:len(raw)-checksumLen]
	checksum := raw[len(raw)-checksumLen:]
	if !gcrypto.Hash(checksum).Equal(gcrypto.Checksum(content)) {
		return nil, errors.New("invalid address checksum")
	}

	addr := NewAddress(content[0], content[1:])
	if addr.Type() == AddressTypeP2PK {
		if _, err := btcec.ParsePubKey(addr.Body, btcec.S256()); err != nil {
			return nil, errors.Wrap(err, "invalid public key in address")
		}
	}
	return addr, nil
}

// NewAddressFromTree recovers the address a serialized spending script
// stands for. Public-key scripts map back to P2PK addresses; any other
// non-empty script is addressed pay-to-script.
func NewAddressFromTree(tree []byte, network *Network) (*Address, error) {
	if len(tree) == 0 {
		return nil, errors.New("empty script")
	}
	if len(tree) == len(p2pkTreePrefix)+btcec.PubKeyBytesLenCompressed &&
		bytes.Equal(tree[:len(p2pkTreePrefix)], p2pkTreePrefix) {
		key, err := btcec.ParsePubKey(tree[len(p2pkTreePrefix):], btcec.S256())
		if err != nil {
			return nil, errors.Wrap(err, "invalid public key in script")
		}
		return NewP2PKAddress(key, network), nil
	}
	return NewAddress(network.Prefix|AddressTypeP2S, tree), nil
}

func MustAddressFromString(str string) *Address {
	addr, err := NewAddressFromString(str)
	if err != nil {
		panic(err)
	}
	return addr
}

func (a *Address) Type() byte {
	return a.Prefix & 0x0f
}

// Tree returns the serialized spending script the address stands for.
// P2S addresses carry the script verbatim; P2PK addresses expand to the
// fixed public-key script.
func (a *Address) Tree() []byte {
	if a.Type() == AddressTypeP2S {
		return a.Body
	}
	tree := make([]byte, 0, len(p2pkTreePrefix)+len(a.Body))
	tree = append(tree, p2pkTreePrefix...)
	return append(tree, a.Body...)
}

func (a *Address) String() string {
	raw := make([]byte, 0, 1+len(a.Body)+checksumLen)
	raw = append(raw, a.Prefix)
	raw = append(raw, a.Body...)
	return base58.Encode(append(raw, gcrypto.Checksum(raw)...))
}

func (a *Address) Equal(other *Address) bool {
	if other == nil {
		return a == nil
	}
	return a.String() == other.String()
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.WithStack(err)
	}
	addr, err := NewAddressFromString(str)
	if err != nil {
		return err
	}
	*a = *addr
	return nil
}
