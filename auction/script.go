package auction

import (
	"encoding/base64"
	"sort"
	"strconv"
	"strings"
)

// AuctionScriptParams parametrize the auction-opening contract. Each
// field is serialized through its own encoder rather than pasted in,
// so a malformed value cannot leak into the script text.
type AuctionScriptParams struct {
	UserTree   []byte
	InitialBid int64
	EndTime    int64
	BidStep    int64
	CurrencyID []byte
	BuyItNow   int64
	FeeReserve int64
	Timestamp  int64
}

func (p *AuctionScriptParams) Render() string {
	return substitute(auctionScriptTemplate, []binding{
		{"$userAddress", encodeBytes(p.UserTree)},
		{"$bidAmount", encodeLong(p.InitialBid)},
		{"$endTime", encodeLong(p.EndTime)},
		{"$bidDelta", encodeLong(p.BidStep)},
		{"$currencyId", encodeBytes(p.CurrencyID)},
		{"$buyItNow", encodeLong(p.BuyItNow)},
		{"$feeReserve", encodeLong(p.FeeReserve)},
		{"$timestamp", encodeLong(p.Timestamp)},
	})
}

// BidScriptParams parametrize the bid contract, binding it to the
// specific auction box being spent.
type BidScriptParams struct {
	UserAddress string
	BidAmount   int64
	CurrencyID  []byte
	AuctionID   []byte
	FeeReserve  int64
	Timestamp   int64
}

func (p *BidScriptParams) Render() string {
	return substitute(bidScriptTemplate, []binding{
		{"$userAddress", p.UserAddress},
		{"$bidAmount", encodeLong(p.BidAmount)},
		{"$currencyId", encodeBytes(p.CurrencyID)},
		{"$auctionId", encodeBytes(p.AuctionID)},
		{"$feeReserve", encodeLong(p.FeeReserve)},
		{"$timestamp", encodeLong(p.Timestamp)},
	})
}

type binding struct {
	name  string
	value string
}

// substitute replaces every occurrence of each placeholder, longest
// name first so that no name that prefixes another is partially
// replaced, and escapes newlines into a single-line script.
func substitute(tpl string, bindings []binding) string {
	sort.SliceStable(bindings, func(i, j int) bool {
		return len(bindings[i].name) > len(bindings[j].name)
	})

	out := tpl
	for _, b := range bindings {
		out = strings.ReplaceAll(out, b.name, b.value)
	}
	return strings.ReplaceAll(out, "\n", "\\n")
}

// encodeBytes emits the base64 literal form of a byte field. An empty
// field yields a zero-length literal, which the contract guards read
// as "native coin, no token constraint".
func encodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func encodeLong(v int64) string {
	return strconv.FormatInt(v, 10)
}
