package chain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const CoinDecimals = 9

// FormatAmount renders an amount in the smallest currency unit as a
// human-readable decimal string.
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).String()
}

func FormatCoin(amount int64) string {
	return FormatAmount(amount, CoinDecimals)
}

// ParseCoin converts a decimal coin string to the smallest unit.
func ParseCoin(str string) (int64, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return 0, errors.Wrap(err, "invalid coin amount")
	}
	d = d.Shift(CoinDecimals)
	if !d.IsInteger() {
		return 0, errors.New("coin amount has too many decimal places")
	}
	return d.IntPart(), nil
}
