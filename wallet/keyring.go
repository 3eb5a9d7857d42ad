// Package wallet supplies the funder identity the auction protocol
// needs: a stable pay-to-public-key address, derived from a mnemonic.
// Transaction signing never happens here; funding goes through the
// assembler service or an external wallet.
package wallet

import (
	"github.com/arkadda/seri/chain"
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

const (
	coinPurpose = 44
	coinType    = 429
)

type Keyring struct {
	network *chain.Network
	account *bip32.Key
}

func NewKeyringFromMnemonic(network *chain.Network, mnemonic, password string) (*Keyring, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}

	master, err := bip32.NewMasterKey(bip39.NewSeed(mnemonic, password))
	if err != nil {
		return nil, errors.Wrap(err, "error deriving master key")
	}

	account := master
	for _, index := range []uint32{
		bip32.FirstHardenedChild + coinPurpose,
		bip32.FirstHardenedChild + coinType,
		bip32.FirstHardenedChild,
		0,
	} {
		account, err = account.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrap(err, "error deriving account key")
		}
	}

	return &Keyring{
		network: network,
		account: account,
	}, nil
}

// Address returns the keyring's address at the given external index.
// Index 0 is the identity the daemon funds and bids with.
func (k *Keyring) Address(index uint32) (*chain.Address, error) {
	child, err := k.account.NewChildKey(index)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving address key")
	}

	pub, err := btcec.ParsePubKey(child.PublicKey().Key, btcec.S256())
	if err != nil {
		return nil, errors.Wrap(err, "error parsing derived public key")
	}
	return chain.NewP2PKAddress(pub, k.network), nil
}

func NewRandomMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(160)
	if err != nil {
		return "", errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	return mnemonic, errors.WithStack(err)
}
