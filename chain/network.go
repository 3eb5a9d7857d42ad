package chain

import (
	"github.com/pkg/errors"
)

// AuctionContract holds the per-contract anti-snipe parameters. A bid
// landing within ExtendThreshold of the end time pushes the end time
// out by ExtendNum. Both are milliseconds.
type AuctionContract struct {
	Address         string
	ExtendThreshold int64
	ExtendNum       int64
}

type Network struct {
	Name         string
	Prefix       byte
	APIPort      int
	ExplorerURL  string
	AssemblerURL string

	// TxFee is the flat transaction fee, FeeReserve the amount the
	// refund guard lets the contract keep back when funds are returned.
	TxFee       int64
	FeeReserve  int64
	MinAuction  int64
	CoinName    string
	DataInputID string

	AuctionContracts []*AuctionContract
}

var NetworkMain = &Network{
	Name:         "main",
	Prefix:       0x00,
	APIPort:      9722,
	ExplorerURL:  "https://api.ergoplatform.com",
	AssemblerURL: "https://assembler.ergoauctions.org",
	TxFee:        2000000,
	FeeReserve:   2000000,
	MinAuction:   10000000,
	CoinName:     "ERG",
	DataInputID:  "b2e0f7deb0e56e5dbbd7a3c4d6f155ea4ac03a4a6c3cca80d4aa3a64a7f219b1",
	AuctionContracts: []*AuctionContract{
		{
			Address:         "XUFGJTLLZ2WHryGxUzDFPSBkaGJiqyVCkTXvCVEXJmBvBhhFyiJk3dgg2KkiWUzpGibvB7SigW5CLu6microQ9DAH8KsJqDbKjWfFgmrzLTiBxHYvKtSTnDuZXsQzpmVcnLwjvJvHPGAQKgYPW2PCknusfJ5XhaqRgWgXTJmdXDQbWvvP",
			ExtendThreshold: 30 * 60 * 1000,
			ExtendNum:       40 * 60 * 1000,
		},
	},
}

var NetworkTest = &Network{
	Name:         "test",
	Prefix:       0x10,
	APIPort:      9723,
	ExplorerURL:  "https://api-testnet.ergoplatform.com",
	AssemblerURL: "http://assembler-testnet.ergoauctions.org",
	TxFee:        2000000,
	FeeReserve:   2000000,
	MinAuction:   10000000,
	CoinName:     "ERG",
	DataInputID:  "20fa2bf23962cdf51b07722d6237c0c7b8a44f78856c0f7ec308dc1ef1a92a51",
	AuctionContracts: []*AuctionContract{
		{
			Address:         "2cBjjwbY8Rwe8wgkGqWApp5cAa4PvKsGXhZUWAoAXKns5rW7JGGyGpUKFTShCaTbxaiXqEm6jHhPnUmVo1rsjmFSDsgWcAKZHSAC87sJCmfZK3cEtKKWRfCGM9BFSVqTnYaeEresepSbnMovyKTKmm4gqUkNbSNTeoqUAGoAFRQkGrWFtZNb",
			ExtendThreshold: 30 * 60 * 1000,
			ExtendNum:       40 * 60 * 1000,
		},
	},
}

var Networks = []*Network{
	NetworkMain,
	NetworkTest,
}

func NetworkFromName(name string) (*Network, error) {
	for _, n := range Networks {
		if n.Name == name {
			return n, nil
		}
	}
	return nil, errors.Errorf("unknown network %s", name)
}

// AuctionContract returns the configured parameters for the auction
// contract living at address. An unknown address is a configuration
// error, not a runtime condition.
func (n *Network) AuctionContract(address string) (*AuctionContract, error) {
	for _, c := range n.AuctionContracts {
		if c.Address == address {
			return c, nil
		}
	}
	return nil, errors.Errorf("no auction contract configured at %s", address)
}

func (n *Network) DefaultAuctionContract() *AuctionContract {
	return n.AuctionContracts[0]
}
