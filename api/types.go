package api

import (
	"github.com/arkadda/seri/auction"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/gjson"
)

type StatusRes struct {
	Network string             `json:"network"`
	Address string             `json:"address"`
	Block   *chain.BlockHeader `json:"block"`
}

type CreateAuctionReq struct {
	InitialBid  int64            `json:"initialBid"`
	BidStep     int64            `json:"bidStep"`
	EndTime     int64            `json:"endTime"`
	BuyItNow    int64            `json:"buyItNow"`
	CurrencyID  gjson.ByteString `json:"currencyId"`
	Description string           `json:"description"`
}

type CreateBidReq struct {
	BoxID  string `json:"boxId"`
	Amount int64  `json:"amount"`
}

type ListBidsRes struct {
	Bids []*auction.PendingBid `json:"bids"`
}

type ListAuctionsRes struct {
	Auctions []*chain.Box `json:"auctions"`
}
