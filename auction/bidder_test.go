package auction

import (
	"context"
	"encoding/json"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/sigma"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestBidder(t *testing.T, blockTimestamp int64, funder *fakeFunder, store *fakeStore) *Bidder {
	bidder := NewBidder(
		chain.NetworkMain,
		testContract,
		testAddress(t, 0x33),
		&fakeChain{block: &chain.BlockHeader{Height: 500000, Timestamp: blockTimestamp}},
		funder,
		store,
	)
	bidder.now = fixedNow
	return bidder
}

func TestNextEndTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining int64
		extended  bool
	}{
		{"far from deadline", testContract.ExtendThreshold + 1, false},
		{"exactly at the threshold", testContract.ExtendThreshold, true},
		{"inside the window", testContract.ExtendThreshold - 1, true},
		{"last millisecond", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := testEndTime - tt.remaining
			next := NextEndTime(testEndTime, now, testContract)
			if tt.extended {
				require.Equal(t, testEndTime+testContract.ExtendNum, next)
			} else {
				require.Equal(t, testEndTime, next)
			}
		})
	}
}

func TestRegisterBidNative(t *testing.T) {
	t.Parallel()

	// far enough from the deadline that no extension triggers
	blockTimestamp := testEndTime - testContract.ExtendThreshold - 1
	funder := &fakeFunder{address: "p2s-bid-addr"}
	store := new(fakeStore)
	bidder := newTestBidder(t, blockTimestamp, funder, store)
	box := testAuctionBox(t, false)

	bidAmount := testInitial + testStep*2
	res, err := bidder.RegisterBid(context.Background(), bidAmount, box)
	require.NoError(t, err)
	require.Equal(t, "follow-1", res.ID)
	require.Equal(t, "p2s-bid-addr", res.Address)

	require.Len(t, funder.followed, 1)
	req := funder.followed[0]
	require.Equal(t, map[string]int64{"erg": bidAmount + chain.NetworkMain.TxFee}, req.StartWhen)
	require.Equal(t, []string{assembler.UserInput, box.BoxID.String()}, req.TxSpec.Inputs)
	require.Len(t, req.TxSpec.Requests, 2)

	replacement := req.TxSpec.Requests[0]
	require.Equal(t, testContract.Address, replacement.Address)
	require.Equal(t, bidAmount, replacement.Value)
	require.Len(t, replacement.Assets, 1)
	require.Equal(t, box.Assets[0].TokenID.String(), replacement.Assets[0].TokenID)

	// R4, R6, R8 and R9 ride along unchanged; R5 and R7 are rewritten
	require.EqualValues(t, box.AdditionalRegisters["R4"], replacement.Registers.R4)
	require.EqualValues(t, box.AdditionalRegisters["R6"], replacement.Registers.R6)
	require.EqualValues(t, box.AdditionalRegisters["R8"], replacement.Registers.R8)
	require.EqualValues(t, box.AdditionalRegisters["R9"], replacement.Registers.R9)

	newBidder, err := sigma.DecodeByteColl(replacement.Registers.R5)
	require.NoError(t, err)
	require.Equal(t, testAddress(t, 0x33).Tree(), newBidder)

	endTime, err := sigma.DecodeLong(replacement.Registers.R7)
	require.NoError(t, err)
	require.Equal(t, testEndTime, endTime)

	refund := req.TxSpec.Requests[1]
	require.Equal(t, testAddress(t, 0x22).String(), refund.Address)
	require.Equal(t, box.Value, refund.Value)
	require.Empty(t, refund.Assets)

	require.Len(t, store.inserted, 1)
	record := store.inserted[0]
	require.False(t, record.Info.IsFirst)
	require.False(t, record.Info.Extended)
	require.Equal(t, testEndTime, record.Info.PrevEndTime)
	require.Equal(t, testEndTime, record.Info.EndTime)
	require.Equal(t, bidAmount, record.Info.Amount)
}

func TestRegisterBidExtendsDeadline(t *testing.T) {
	t.Parallel()

	blockTimestamp := testEndTime - testContract.ExtendThreshold
	funder := &fakeFunder{address: "p2s-bid-addr"}
	store := new(fakeStore)
	bidder := newTestBidder(t, blockTimestamp, funder, store)
	box := testAuctionBox(t, false)

	res, err := bidder.RegisterBid(context.Background(), testInitial+testStep, box)
	require.NoError(t, err)

	replacement := funder.followed[0].TxSpec.Requests[0]
	endTime, err := sigma.DecodeLong(replacement.Registers.R7)
	require.NoError(t, err)
	require.Equal(t, testEndTime+testContract.ExtendNum, endTime)

	require.True(t, res.Record.Info.Extended)
	require.Equal(t, testEndTime, res.Record.Info.PrevEndTime)
	require.Equal(t, testEndTime+testContract.ExtendNum, res.Record.Info.EndTime)
}

func TestRegisterBidExplorerBox(t *testing.T) {
	t.Parallel()

	// round-trip the box through the explorer's wire form, which
	// carries no bidder address; the refund target must come out of
	// the R5 claim register
	raw, err := json.Marshal(testAuctionBox(t, false))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "bidder")

	box := new(chain.Box)
	require.NoError(t, json.Unmarshal(raw, box))

	funder := &fakeFunder{address: "p2s-bid-addr"}
	store := new(fakeStore)
	bidder := newTestBidder(t, testEndTime-testContract.ExtendThreshold-1, funder, store)

	_, err = bidder.RegisterBid(context.Background(), testInitial+testStep, box)
	require.NoError(t, err)

	refund := funder.followed[0].TxSpec.Requests[1]
	require.NotEmpty(t, refund.Address)
	require.Equal(t, testAddress(t, 0x22).String(), refund.Address)
}

func TestRegisterBidTokenAuction(t *testing.T) {
	t.Parallel()

	blockTimestamp := testEndTime - testContract.ExtendThreshold - 1
	funder := &fakeFunder{address: "p2s-bid-addr"}
	store := new(fakeStore)
	bidder := newTestBidder(t, blockTimestamp, funder, store)
	box := testAuctionBox(t, true)

	bidAmount := testInitial + testStep
	_, err := bidder.RegisterBid(context.Background(), bidAmount, box)
	require.NoError(t, err)

	req := funder.followed[0]
	currencyHex := box.Assets[1].TokenID.String()
	require.Equal(t, map[string]int64{currencyHex: bidAmount}, req.StartWhen)

	replacement := req.TxSpec.Requests[0]
	require.Equal(t, box.Value, replacement.Value)
	require.Len(t, replacement.Assets, 2)
	require.Equal(t, currencyHex, replacement.Assets[1].TokenID)
	require.Equal(t, bidAmount, replacement.Assets[1].Amount)

	refund := req.TxSpec.Requests[1]
	require.EqualValues(t, -1, refund.Value)
	require.Len(t, refund.Assets, 1)
	require.Equal(t, currencyHex, refund.Assets[0].TokenID)
	require.Equal(t, box.Assets[1].Amount, refund.Assets[0].Amount)
}

func TestRegisterBidValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		blockTimestamp int64
		bidAmount      int64
		mangler        func(*chain.Box)
	}{
		{
			"bid below the minimum increment",
			testEndTime - testContract.ExtendThreshold - 1,
			testInitial + testStep - 1,
			nil,
		},
		{
			"auction already ended",
			testEndTime,
			testInitial + testStep,
			nil,
		},
		{
			"missing marker token",
			testEndTime - testContract.ExtendThreshold - 1,
			testInitial + testStep,
			func(box *chain.Box) { box.Assets = nil },
		},
		{
			"missing end time register",
			testEndTime - testContract.ExtendThreshold - 1,
			testInitial + testStep,
			func(box *chain.Box) { delete(box.AdditionalRegisters, "R7") },
		},
		{
			"missing bidder claim register",
			testEndTime - testContract.ExtendThreshold - 1,
			testInitial + testStep,
			func(box *chain.Box) { delete(box.AdditionalRegisters, "R5") },
		},
		{
			"garbage bidder claim register",
			testEndTime - testContract.ExtendThreshold - 1,
			testInitial + testStep,
			func(box *chain.Box) { box.AdditionalRegisters["R5"] = []byte{0x0e, 0x00} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			funder := &fakeFunder{address: "p2s-bid-addr"}
			store := new(fakeStore)
			bidder := newTestBidder(t, tt.blockTimestamp, funder, store)

			box := testAuctionBox(t, false)
			if tt.mangler != nil {
				tt.mangler(box)
			}

			_, err := bidder.RegisterBid(context.Background(), tt.bidAmount, box)
			require.Error(t, err)
			require.Empty(t, funder.followed)
			require.Empty(t, store.inserted)
		})
	}
}

func TestRegisterBidAssemblerDown(t *testing.T) {
	t.Parallel()

	funder := &fakeFunder{
		address:   "p2s-bid-addr",
		followErr: errors.Wrap(assembler.ErrUnavailable, "connection refused"),
	}
	store := new(fakeStore)
	bidder := newTestBidder(t, testEndTime-testContract.ExtendThreshold-1, funder, store)

	_, err := bidder.RegisterBid(context.Background(), testInitial+testStep, testAuctionBox(t, false))
	require.Error(t, err)
	require.True(t, errors.Is(err, assembler.ErrUnavailable))
	require.Empty(t, store.inserted)
}
