package auction

import (
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/gjson"
)

const (
	StatusPendingMining = "pending mining"
	StatusMined         = "mined"
	StatusFailed        = "failed"
)

// PendingBid is the local bookkeeping record written once per
// successful submission. The status later moves to mined or failed by
// whoever watches the chain; this package only ever creates records.
type PendingBid struct {
	ID      string  `json:"id"`
	Message string  `json:"message"`
	Info    BidInfo `json:"info"`
}

type BidInfo struct {
	Token       *chain.Asset     `json:"token,omitempty"`
	BoxID       gjson.ByteString `json:"boxId,omitempty"`
	TxID        string           `json:"txId,omitempty"`
	Status      string           `json:"status"`
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	IsFirst     bool             `json:"isFirst"`
	PrevEndTime int64            `json:"prevEndTime,omitempty"`
	EndTime     int64            `json:"endTime,omitempty"`
	Extended    bool             `json:"extended"`
	Address     string           `json:"address"`
}

// Result is what a register operation hands back on success: the
// follow id, the derived funding address, the anchor block and the
// record that was persisted.
type Result struct {
	ID      string             `json:"id"`
	Address string             `json:"address"`
	Block   *chain.BlockHeader `json:"block"`
	Record  *PendingBid        `json:"record"`
}
