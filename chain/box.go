package chain

import (
	"github.com/arkadda/seri/gjson"
	"github.com/arkadda/seri/sigma"
	"github.com/pkg/errors"
)

// Asset is a (token, amount) pair attached to a box. Slot 0 of an
// auction box is the marker token identifying the box type; slot 1, if
// present, holds the non-native bidding currency.
type Asset struct {
	TokenID gjson.ByteString `json:"tokenId"`
	Amount  int64            `json:"amount"`
}

// Registers holds a box's serialized auxiliary values keyed R4..R9.
type Registers map[string]gjson.ByteString

// Box is an unspent output. Boxes are immutable; the auction protocol
// "mutates" one by spending it and recreating a successor.
type Box struct {
	BoxID               gjson.ByteString `json:"boxId"`
	TxID                gjson.ByteString `json:"txId,omitempty"`
	Value               int64            `json:"value"`
	Address             string           `json:"address"`
	Assets              []*Asset         `json:"assets"`
	AdditionalRegisters Registers        `json:"additionalRegisters"`
}

// IsTokenAuction reports whether the box bids in a fungible token
// rather than the native coin.
func (b *Box) IsTokenAuction() bool {
	return len(b.Assets) > 1
}

// CurrencyID returns the bidding currency's token id, empty for the
// native coin.
func (b *Box) CurrencyID() []byte {
	if !b.IsTokenAuction() {
		return nil
	}
	return b.Assets[1].TokenID
}

// CurrentBid is the standing high bid: the box value for native-coin
// auctions, the currency token amount otherwise.
func (b *Box) CurrentBid() int64 {
	if b.IsTokenAuction() {
		return b.Assets[1].Amount
	}
	return b.Value
}

func (b *Box) Register(name string) (gjson.ByteString, error) {
	reg, ok := b.AdditionalRegisters[name]
	if !ok {
		return nil, errors.Errorf("box %s has no register %s", b.BoxID, name)
	}
	return reg, nil
}

// BidTerms decodes the (initialBid, bidStep) pair out of R6.
func (b *Box) BidTerms() (int64, int64, error) {
	reg, err := b.Register("R6")
	if err != nil {
		return 0, 0, err
	}
	return sigma.DecodeLongPair(reg)
}

// EndTime decodes the auction deadline out of R7.
func (b *Box) EndTime() (int64, error) {
	reg, err := b.Register("R7")
	if err != nil {
		return 0, err
	}
	return sigma.DecodeLong(reg)
}

// BuyItNow decodes the immediate-purchase price out of R8.
func (b *Box) BuyItNow() (int64, error) {
	reg, err := b.Register("R8")
	if err != nil {
		return 0, err
	}
	return sigma.DecodeLong(reg)
}
