// Package auction implements the auction state machine's client side:
// turning a user intent (start an auction, place a bid) into a funding
// request the on-chain contract accepts. The contract templates and
// the request builders here must stay bit-for-bit consistent with each
// other; a mismatch strands funds or gets bids rejected at consensus.
package auction

import (
	"context"
	"encoding/hex"
	"github.com/arkadda/seri/assembler"
	"github.com/arkadda/seri/chain"
	"time"
)

// ChainState supplies the chain tip. Heights and timestamps are
// assumed monotonically increasing.
type ChainState interface {
	CurrentBlock(ctx context.Context) (*chain.BlockHeader, error)
}

// Funder compiles scripts and registers funding requests. Both calls
// are remote; failures surface as assembler.ErrUnavailable.
type Funder interface {
	Compile(ctx context.Context, script string) (string, error)
	Follow(ctx context.Context, req *assembler.FundRequest) (*assembler.FollowResult, error)
}

// BidStore persists pending-bid records. Records are written only
// after the remote submission succeeded.
type BidStore interface {
	InsertBid(record *PendingBid) error
}

// NextEndTime applies the anti-snipe rule: a bid landing inside the
// threshold window, boundary included, pushes the deadline out by the
// contract's extension amount.
func NextEndTime(endTime, blockTimestamp int64, contract *chain.AuctionContract) int64 {
	if endTime-blockTimestamp <= contract.ExtendThreshold {
		return endTime + contract.ExtendNum
	}
	return endTime
}

func nowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func currencyName(network *chain.Network, currencyID []byte) string {
	if len(currencyID) == 0 {
		return network.CoinName
	}
	return hex.EncodeToString(currencyID)
}
