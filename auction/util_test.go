package auction

import (
	"context"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/sigma"
	"github.com/btcsuite/btcd/btcec"
	"testing"
)

const (
	testEndTime   = int64(1616515200000)
	testInitial   = int64(1000000000)
	testStep      = int64(100000000)
	testBuyItNow  = int64(5000000000)
	testTimestamp = int64(1616512000000)
)

var testContract = &chain.AuctionContract{
	Address:         chain.NetworkMain.DefaultAuctionContract().Address,
	ExtendThreshold: 30 * 60 * 1000,
	ExtendNum:       40 * 60 * 1000,
}

type fakeChain struct {
	block *chain.BlockHeader
	err   error
}

func (f *fakeChain) CurrentBlock(ctx context.Context) (*chain.BlockHeader, error) {
	return f.block, f.err
}

type fakeFunder struct {
	address   string
	compiled  []string
	followErr error
	followed  []*assembler.FundRequest
}

func (f *fakeFunder) Compile(ctx context.Context, script string) (string, error) {
	f.compiled = append(f.compiled, script)
	return f.address, nil
}

func (f *fakeFunder) Follow(ctx context.Context, req *assembler.FundRequest) (*assembler.FollowResult, error) {
	if f.followErr != nil {
		return nil, f.followErr
	}
	f.followed = append(f.followed, req)
	return &assembler.FollowResult{ID: "follow-1"}, nil
}

type fakeStore struct {
	inserted []*PendingBid
}

func (f *fakeStore) InsertBid(record *PendingBid) error {
	f.inserted = append(f.inserted, record)
	return nil
}

func testAddress(t *testing.T, seed byte) *chain.Address {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = seed
	}
	raw[31] = 1
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), raw)
	return chain.NewP2PKAddress(pub, chain.NetworkMain)
}

func testAuctionBox(t *testing.T, tokenAuction bool) *chain.Box {
	t.Helper()
	seller := testAddress(t, 0x11)
	prevBidder := testAddress(t, 0x22)

	box := &chain.Box{
		BoxID:   []byte{0xaa, 0xbb, 0xcc, 0xdd},
		Value:   testInitial,
		Address: testContract.Address,
		Assets: []*chain.Asset{
			{TokenID: []byte{0x01, 0x02}, Amount: 0},
		},
		AdditionalRegisters: chain.Registers{
			"R4": sigma.EncodeByteColl(seller.Tree()),
			"R5": sigma.EncodeByteColl(prevBidder.Tree()),
			"R6": sigma.EncodeLongColl(testInitial, testStep),
			"R7": sigma.EncodeLong(testEndTime),
			"R8": sigma.EncodeLong(testBuyItNow),
			"R9": sigma.EncodeByteColl([]byte("1000000000,1616512000000,a fine rug")),
		},
	}
	if tokenAuction {
		box.Value = 2000000
		box.Assets = append(box.Assets, &chain.Asset{
			TokenID: []byte{0x0c, 0x0f, 0xee},
			Amount:  testInitial,
		})
	}
	return box
}

func fixedNow() int64 {
	return testTimestamp
}
