package auction

import (
	"context"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/sigma"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestOpener(t *testing.T, funder *fakeFunder, store *fakeStore) *Opener {
	opener := NewOpener(
		chain.NetworkMain,
		testContract,
		testAddress(t, 0x33),
		&fakeChain{block: &chain.BlockHeader{Height: 500000, Timestamp: testTimestamp}},
		funder,
		store,
	)
	opener.now = fixedNow
	return opener
}

func testParams() *AuctionParams {
	return &AuctionParams{
		InitialBid:  testInitial,
		BidStep:     testStep,
		EndTime:     testEndTime,
		BuyItNow:    testBuyItNow,
		Description: "a fine rug",
	}
}

func TestRegisterAuctionNative(t *testing.T) {
	t.Parallel()

	funder := &fakeFunder{address: "p2s-auction-addr"}
	store := new(fakeStore)
	opener := newTestOpener(t, funder, store)

	res, err := opener.RegisterAuction(context.Background(), testParams())
	require.NoError(t, err)
	require.Equal(t, "follow-1", res.ID)
	require.Equal(t, "p2s-auction-addr", res.Address)

	require.Len(t, funder.followed, 1)
	req := funder.followed[0]
	require.Equal(t, "p2s-auction-addr", req.Address)
	require.Equal(t, map[string]int64{"erg": chain.NetworkMain.MinAuction - chain.NetworkMain.TxFee}, req.StartWhen)
	require.Equal(t, []string{assembler.UserInput}, req.TxSpec.Inputs)
	require.Equal(t, []string{chain.NetworkMain.DataInputID}, req.TxSpec.DataInputs)
	require.Equal(t, chain.NetworkMain.TxFee, req.TxSpec.Fee)

	require.Len(t, req.TxSpec.Requests, 1)
	boxSpec := req.TxSpec.Requests[0]
	require.Equal(t, testContract.Address, boxSpec.Address)
	require.EqualValues(t, -1, boxSpec.Value)
	require.Len(t, boxSpec.Assets, 1)
	require.Equal(t, assembler.UserInputToken, boxSpec.Assets[0].TokenID)
	require.EqualValues(t, 0, boxSpec.Assets[0].Amount)

	initial, step, err := sigma.DecodeLongPair(boxSpec.Registers.R6)
	require.NoError(t, err)
	require.Equal(t, testInitial, initial)
	require.Equal(t, testStep, step)
	require.Equal(t, boxSpec.Registers.R4, boxSpec.Registers.R5)

	endTime, err := sigma.DecodeLong(boxSpec.Registers.R7)
	require.NoError(t, err)
	require.Equal(t, testEndTime, endTime)

	info, err := sigma.DecodeByteColl(boxSpec.Registers.R9)
	require.NoError(t, err)
	require.Equal(t, "1000000000,1616512000000,a fine rug", string(info))

	require.Len(t, store.inserted, 1)
	record := store.inserted[0]
	require.True(t, record.Info.IsFirst)
	require.Equal(t, testInitial, record.Info.Amount)
	require.Equal(t, "ERG", record.Info.Currency)
	require.Equal(t, StatusPendingMining, record.Info.Status)
}

func TestRegisterAuctionTokenCurrency(t *testing.T) {
	t.Parallel()

	funder := &fakeFunder{address: "p2s-auction-addr"}
	store := new(fakeStore)
	opener := newTestOpener(t, funder, store)

	params := testParams()
	params.CurrencyID = []byte{0x0c, 0x0f, 0xee}

	_, err := opener.RegisterAuction(context.Background(), params)
	require.NoError(t, err)

	req := funder.followed[0]
	require.EqualValues(t, 0, req.StartWhen["0c0fee"])

	boxSpec := req.TxSpec.Requests[0]
	require.Len(t, boxSpec.Assets, 2)
	require.Equal(t, "0c0fee", boxSpec.Assets[1].TokenID)
	require.EqualValues(t, -1, boxSpec.Assets[1].Amount)
}

func TestRegisterAuctionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mangler func(*AuctionParams)
	}{
		{
			"zero initial bid",
			func(p *AuctionParams) { p.InitialBid = 0 },
		},
		{
			"zero step",
			func(p *AuctionParams) { p.BidStep = 0 },
		},
		{
			"end time in the past",
			func(p *AuctionParams) { p.EndTime = testTimestamp - 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			funder := &fakeFunder{address: "p2s-auction-addr"}
			store := new(fakeStore)
			opener := newTestOpener(t, funder, store)

			params := testParams()
			tt.mangler(params)

			_, err := opener.RegisterAuction(context.Background(), params)
			require.Error(t, err)
			require.Empty(t, funder.followed)
			require.Empty(t, store.inserted)
		})
	}
}

func TestRegisterAuctionAssemblerDown(t *testing.T) {
	t.Parallel()

	funder := &fakeFunder{
		address:   "p2s-auction-addr",
		followErr: errors.Wrap(assembler.ErrUnavailable, "response carried no follow id"),
	}
	store := new(fakeStore)
	opener := newTestOpener(t, funder, store)

	_, err := opener.RegisterAuction(context.Background(), testParams())
	require.Error(t, err)
	require.True(t, errors.Is(err, assembler.ErrUnavailable))
	require.Empty(t, store.inserted)
}
