package auction

import (
	"context"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/log"
	"github.com/arkadda/seri/sigma"
	"github.com/pkg/errors"
)

// Bidder places bids against existing auction boxes. The bid contract
// binds to the specific box id being spent, so every bid derives a
// fresh funding address.
type Bidder struct {
	network  *chain.Network
	contract *chain.AuctionContract
	addr     *chain.Address
	explorer ChainState
	funder   Funder
	store    BidStore
	now      func() int64
	lg       log.Logger
}

func NewBidder(
	network *chain.Network,
	contract *chain.AuctionContract,
	addr *chain.Address,
	explorer ChainState,
	funder Funder,
	store BidStore,
) *Bidder {
	return &Bidder{
		network:  network,
		contract: contract,
		addr:     addr,
		explorer: explorer,
		funder:   funder,
		store:    store,
		now:      nowMillis,
		lg:       openerLogger.Child("op", "bid"),
	}
}

// RegisterBid builds and submits the two-output request replacing the
// auction box with the new high bid and refunding the previous bidder.
// Two bids racing for the same box resolve at consensus; the loser's
// submission fails like any other.
func (b *Bidder) RegisterBid(ctx context.Context, bidAmount int64, box *chain.Box) (*Result, error) {
	if len(box.Assets) == 0 {
		return nil, errors.New("auction box is missing its marker token")
	}

	endTime, err := box.EndTime()
	if err != nil {
		return nil, err
	}
	_, step, err := box.BidTerms()
	if err != nil {
		return nil, err
	}
	prevBidder, err := b.previousBidder(box)
	if err != nil {
		return nil, err
	}

	block, err := b.explorer.CurrentBlock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching chain tip")
	}
	if block.Timestamp >= endTime {
		return nil, errors.New("auction has already ended")
	}
	if min := box.CurrentBid() + step; bidAmount < min {
		return nil, errors.Errorf("bid of %d is below the minimum of %d", bidAmount, min)
	}

	script := (&BidScriptParams{
		UserAddress: b.addr.String(),
		BidAmount:   bidAmount,
		CurrencyID:  box.CurrencyID(),
		AuctionID:   box.BoxID,
		FeeReserve:  b.network.FeeReserve,
		Timestamp:   b.now(),
	}).Render()

	p2s, err := b.funder.Compile(ctx, script)
	if err != nil {
		return nil, err
	}

	nextEndTime := NextEndTime(endTime, block.Timestamp, b.contract)

	replacement, refund, startWhen := b.buildOutputs(bidAmount, box, prevBidder, nextEndTime)
	if err := b.copyRegisters(replacement, box); err != nil {
		return nil, err
	}

	res, err := b.funder.Follow(ctx, &assembler.FundRequest{
		Address:   p2s,
		ReturnTo:  b.addr.String(),
		StartWhen: startWhen,
		TxSpec: &assembler.TxSpec{
			Requests:   []*assembler.BoxSpec{replacement, refund},
			Fee:        b.network.TxFee,
			Inputs:     []string{assembler.UserInput, box.BoxID.String()},
			DataInputs: []string{b.network.DataInputID},
		},
	})
	if err != nil {
		return nil, err
	}

	record := &PendingBid{
		ID:      res.ID,
		Message: "Your bid is being placed; track it under pending bids.",
		Info: BidInfo{
			Token:       box.Assets[0],
			BoxID:       box.BoxID,
			Status:      StatusPendingMining,
			Amount:      bidAmount,
			Currency:    currencyName(b.network, box.CurrencyID()),
			IsFirst:     false,
			PrevEndTime: endTime,
			EndTime:     nextEndTime,
			Extended:    nextEndTime != endTime,
			Address:     p2s,
		},
	}
	if err := b.store.InsertBid(record); err != nil {
		return nil, errors.Wrap(err, "error recording pending bid")
	}

	b.lg.Info(
		"registered bid",
		"follow_id", res.ID,
		"box_id", box.BoxID.String(),
		"amount", bidAmount,
		"extended", record.Info.Extended,
	)

	return &Result{
		ID:      res.ID,
		Address: p2s,
		Block:   block,
		Record:  record,
	}, nil
}

// previousBidder recovers the standing high bidder's address from the
// R5 claim register. The explorer's box payload carries no address for
// it; the register is the authoritative source.
func (b *Bidder) previousBidder(box *chain.Box) (*chain.Address, error) {
	reg, err := box.Register("R5")
	if err != nil {
		return nil, err
	}
	tree, err := sigma.DecodeByteColl(reg)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding bidder claim register")
	}
	addr, err := chain.NewAddressFromTree(tree, b.network)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding bidder claim register")
	}
	return addr, nil
}

// buildOutputs assembles the replacement auction box and the refund
// box for the outbid participant. Native-coin auctions carry the bid
// as box value; token auctions carry it in the currency asset slot and
// leave the refund box's value to the funding layer.
func (b *Bidder) buildOutputs(bidAmount int64, box *chain.Box, prevBidder *chain.Address, nextEndTime int64) (*assembler.BoxSpec, *assembler.BoxSpec, map[string]int64) {
	marker := &assembler.AssetSpec{
		TokenID: box.Assets[0].TokenID.String(),
		Amount:  box.Assets[0].Amount,
	}

	replacement := &assembler.BoxSpec{
		Address: b.contract.Address,
		Value:   bidAmount,
		Assets:  []*assembler.AssetSpec{marker},
		Registers: &assembler.RegisterSpec{
			R5: sigma.EncodeByteColl(b.addr.Tree()),
			R7: sigma.EncodeLong(nextEndTime),
		},
	}
	refund := &assembler.BoxSpec{
		Address: prevBidder.String(),
		Value:   box.Value,
	}
	startWhen := map[string]int64{
		"erg": bidAmount + b.network.TxFee,
	}

	if box.IsTokenAuction() {
		currency := box.Assets[1]
		currencyHex := currency.TokenID.String()

		replacement.Value = box.Value
		replacement.Assets = append(replacement.Assets, &assembler.AssetSpec{
			TokenID: currencyHex,
			Amount:  bidAmount,
		})
		refund.Value = -1
		refund.Assets = []*assembler.AssetSpec{
			{
				TokenID: currencyHex,
				Amount:  currency.Amount,
			},
		}
		startWhen = map[string]int64{
			currencyHex: bidAmount,
		}
	}

	return replacement, refund, startWhen
}

// copyRegisters carries R4, R6, R8 and R9 over verbatim from the box
// being spent. The current bid advances through the box value or asset
// amount, never through R6.
func (b *Bidder) copyRegisters(replacement *assembler.BoxSpec, box *chain.Box) error {
	for _, name := range []string{"R4", "R6", "R8", "R9"} {
		reg, err := box.Register(name)
		if err != nil {
			return err
		}
		switch name {
		case "R4":
			replacement.Registers.R4 = []byte(reg)
		case "R6":
			replacement.Registers.R6 = []byte(reg)
		case "R8":
			replacement.Registers.R8 = []byte(reg)
		case "R9":
			replacement.Registers.R9 = []byte(reg)
		}
	}
	return nil
}
