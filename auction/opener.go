package auction

import (
	"context"
	"encoding/hex"
	"fmt"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/gjson"
	"github.com/arkadda/seri/log"
	"github.com/arkadda/seri/sigma"
	"github.com/pkg/errors"
)

var openerLogger = log.ModuleLogger("auction")

// Opener starts auctions: it derives the parametrized opening
// contract's address and issues the funding request that creates the
// auction box.
type Opener struct {
	network  *chain.Network
	contract *chain.AuctionContract
	addr     *chain.Address
	explorer ChainState
	funder   Funder
	store    BidStore
	now      func() int64
	lg       log.Logger
}

func NewOpener(
	network *chain.Network,
	contract *chain.AuctionContract,
	addr *chain.Address,
	explorer ChainState,
	funder Funder,
	store BidStore,
) *Opener {
	return &Opener{
		network:  network,
		contract: contract,
		addr:     addr,
		explorer: explorer,
		funder:   funder,
		store:    store,
		now:      nowMillis,
		lg:       openerLogger.Child("op", "open"),
	}
}

// AuctionParams are the immutable terms of a new auction. An empty
// CurrencyID means the native coin.
type AuctionParams struct {
	InitialBid  int64            `json:"initialBid"`
	BidStep     int64            `json:"bidStep"`
	EndTime     int64            `json:"endTime"`
	BuyItNow    int64            `json:"buyItNow"`
	CurrencyID  gjson.ByteString `json:"currencyId"`
	Description string           `json:"description"`
}

func (p *AuctionParams) validate(tip *chain.BlockHeader) error {
	if p.InitialBid <= 0 {
		return errors.New("initial bid must be positive")
	}
	if p.BidStep <= 0 {
		return errors.New("bid step must be positive")
	}
	if p.EndTime <= tip.Timestamp {
		return errors.New("auction end time is not in the future")
	}
	return nil
}

// RegisterAuction builds and submits the box-creation request for a
// new auction. The ledger remains the final authority on the terms;
// local validation only fast-fails requests the contract would reject.
func (o *Opener) RegisterAuction(ctx context.Context, params *AuctionParams) (*Result, error) {
	block, err := o.explorer.CurrentBlock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching chain tip")
	}
	if err := params.validate(block); err != nil {
		return nil, err
	}

	tree := o.addr.Tree()
	script := (&AuctionScriptParams{
		UserTree:   tree,
		InitialBid: params.InitialBid,
		EndTime:    params.EndTime,
		BidStep:    params.BidStep,
		CurrencyID: params.CurrencyID,
		BuyItNow:   params.BuyItNow,
		FeeReserve: o.network.FeeReserve,
		Timestamp:  o.now(),
	}).Render()

	p2s, err := o.funder.Compile(ctx, script)
	if err != nil {
		return nil, err
	}

	info := fmt.Sprintf("%d,%d,%s", params.InitialBid, block.Timestamp, params.Description)

	assets := []*assembler.AssetSpec{
		{
			TokenID: assembler.UserInputToken,
			Amount:  0,
		},
	}
	startWhen := map[string]int64{
		"erg": o.network.MinAuction - o.network.TxFee,
	}
	if len(params.CurrencyID) > 0 {
		currencyHex := hex.EncodeToString(params.CurrencyID)
		startWhen[currencyHex] = 0
		// amount -1: the funding layer supplies the actual starting
		// quantity of the bidding token
		assets = append(assets, &assembler.AssetSpec{
			TokenID: currencyHex,
			Amount:  -1,
		})
	}

	boxSpec := &assembler.BoxSpec{
		Address: o.contract.Address,
		Value:   -1,
		Assets:  assets,
		Registers: &assembler.RegisterSpec{
			R4: sigma.EncodeByteColl(tree),
			R5: sigma.EncodeByteColl(tree),
			R6: sigma.EncodeLongColl(params.InitialBid, params.BidStep),
			R7: sigma.EncodeLong(params.EndTime),
			R8: sigma.EncodeLong(params.BuyItNow),
			R9: sigma.EncodeByteColl([]byte(info)),
		},
	}

	res, err := o.funder.Follow(ctx, &assembler.FundRequest{
		Address:   p2s,
		ReturnTo:  o.addr.String(),
		StartWhen: startWhen,
		TxSpec: &assembler.TxSpec{
			Requests:   []*assembler.BoxSpec{boxSpec},
			Fee:        o.network.TxFee,
			Inputs:     []string{assembler.UserInput},
			DataInputs: []string{o.network.DataInputID},
		},
	})
	if err != nil {
		return nil, err
	}

	record := &PendingBid{
		ID:      res.ID,
		Message: "Your auction will be started soon!",
		Info: BidInfo{
			Status:   StatusPendingMining,
			Amount:   params.InitialBid,
			Currency: currencyName(o.network, params.CurrencyID),
			IsFirst:  true,
			Address:  p2s,
		},
	}
	if err := o.store.InsertBid(record); err != nil {
		return nil, errors.Wrap(err, "error recording pending auction")
	}

	o.lg.Info(
		"registered auction",
		"follow_id", res.ID,
		"initial_bid", params.InitialBid,
		"end_time", params.EndTime,
	)

	return &Result{
		ID:      res.ID,
		Address: p2s,
		Block:   block,
		Record:  record,
	}, nil
}
