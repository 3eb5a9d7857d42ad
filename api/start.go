package api

import (
	"fmt"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/auction"
	"github.com/arkadda/seri/auctiondb"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/explorer"
	"github.com/arkadda/seri/wallet"
	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
	"net/http"
)

type StartOpts struct {
	Network *chain.Network
	Prefix  string
	APIKey  string

	// Mnemonic derives the funder identity locally; Address uses an
	// externally supplied identity instead.
	Mnemonic string
	Address  string

	ExplorerURL  string
	AssemblerURL string
}

func Start(tmb *tomb.Tomb, opts *StartOpts) error {
	addr, err := funderAddress(opts)
	if err != nil {
		return err
	}

	explorerURL := opts.ExplorerURL
	if explorerURL == "" {
		explorerURL = opts.Network.ExplorerURL
	}
	assemblerURL := opts.AssemblerURL
	if assemblerURL == "" {
		assemblerURL = opts.Network.AssemblerURL
	}

	engine, err := auctiondb.NewEngine(opts.Prefix)
	if err != nil {
		return err
	}
	if err := auctiondb.MigrateDB(engine); err != nil {
		return err
	}

	contract := opts.Network.DefaultAuctionContract()
	exp := explorer.NewClient(explorerURL)
	asm := assembler.NewClient(assemblerURL)
	store := auctiondb.NewStore(engine)
	opener := auction.NewOpener(opts.Network, contract, addr, exp, asm, store)
	bidder := auction.NewBidder(opts.Network, contract, addr, exp, asm, store)

	handler := NewAPI(opts.Network, contract, addr, exp, opener, bidder, store, opts.APIKey)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Network.APIPort),
		Handler: handler,
	}

	tmb.Go(func() error {
		apiLogger.Info("starting HTTP server", "port", opts.Network.APIPort)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "error starting HTTP server")
		}
		return nil
	})

	apiLogger.Info("started auction client", "address", addr.String())
	<-tmb.Dying()
	srv.Close()
	engine.Close()
	apiLogger.Info("shut down auction client")
	return tmb.Err()
}

func funderAddress(opts *StartOpts) (*chain.Address, error) {
	if opts.Mnemonic != "" {
		keyring, err := wallet.NewKeyringFromMnemonic(opts.Network, opts.Mnemonic, "")
		if err != nil {
			return nil, err
		}
		return keyring.Address(0)
	}
	if opts.Address == "" {
		return nil, errors.New("either a mnemonic or an address is required")
	}
	return chain.NewAddressFromString(opts.Address)
}
