package wallet

import (
	"github.com/arkadda/seri/chain"
	"github.com/stretchr/testify/require"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestKeyringDerivationDeterministic(t *testing.T) {
	t.Parallel()

	a, err := NewKeyringFromMnemonic(chain.NetworkMain, testMnemonic, "")
	require.NoError(t, err)
	b, err := NewKeyringFromMnemonic(chain.NetworkMain, testMnemonic, "")
	require.NoError(t, err)

	addrA, err := a.Address(0)
	require.NoError(t, err)
	addrB, err := b.Address(0)
	require.NoError(t, err)
	require.True(t, addrA.Equal(addrB))

	addrNext, err := a.Address(1)
	require.NoError(t, err)
	require.False(t, addrA.Equal(addrNext))
}

func TestKeyringAddressIsP2PK(t *testing.T) {
	t.Parallel()

	keyring, err := NewKeyringFromMnemonic(chain.NetworkMain, testMnemonic, "")
	require.NoError(t, err)
	addr, err := keyring.Address(0)
	require.NoError(t, err)

	require.Equal(t, byte(chain.AddressTypeP2PK), addr.Type())
	roundTripped, err := chain.NewAddressFromString(addr.String())
	require.NoError(t, err)
	require.True(t, addr.Equal(roundTripped))
}

func TestKeyringPassphraseChangesAddresses(t *testing.T) {
	t.Parallel()

	plain, err := NewKeyringFromMnemonic(chain.NetworkMain, testMnemonic, "")
	require.NoError(t, err)
	passworded, err := NewKeyringFromMnemonic(chain.NetworkMain, testMnemonic, "hunter2")
	require.NoError(t, err)

	addrA, err := plain.Address(0)
	require.NoError(t, err)
	addrB, err := passworded.Address(0)
	require.NoError(t, err)
	require.False(t, addrA.Equal(addrB))
}

func TestKeyringInvalidMnemonic(t *testing.T) {
	t.Parallel()

	_, err := NewKeyringFromMnemonic(chain.NetworkMain, "not a real mnemonic", "")
	require.Error(t, err)
}

func TestNewRandomMnemonic(t *testing.T) {
	t.Parallel()

	mnemonic, err := NewRandomMnemonic()
	require.NoError(t, err)
	_, err = NewKeyringFromMnemonic(chain.NetworkMain, mnemonic, "")
	require.NoError(t, err)
}
