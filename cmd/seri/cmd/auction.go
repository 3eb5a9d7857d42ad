package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"github.com/arkadda/seri/api"
	"github.com/arkadda/seri/chain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

var (
	auctionStep     string
	auctionBuyNow   string
	auctionCurrency string
	auctionDesc     string
	auctionDuration time.Duration
)

var newAuctionCmd = &cobra.Command{
	Use:   "new-auction [initial-bid]",
	Short: "Starts an auction with the given starting price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var currencyID []byte
		var err error
		if auctionCurrency != "" {
			currencyID, err = hex.DecodeString(auctionCurrency)
			if err != nil {
				return errors.Wrap(err, "invalid currency token id")
			}
		}

		// native-coin amounts are given in coins, token amounts in the
		// token's smallest unit
		parseAmount := chain.ParseCoin
		if len(currencyID) > 0 {
			parseAmount = func(str string) (int64, error) {
				v, err := strconv.ParseInt(str, 10, 64)
				return v, errors.Wrap(err, "invalid token amount")
			}
		}

		initial, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		step, err := parseAmount(auctionStep)
		if err != nil {
			return errors.Wrap(err, "invalid step")
		}
		buyNow, err := parseAmount(auctionBuyNow)
		if err != nil {
			return errors.Wrap(err, "invalid buy-it-now price")
		}

		endTime := time.Now().Add(auctionDuration).UnixNano() / int64(time.Millisecond)

		res, err := apiClient().CreateAuction(context.Background(), &api.CreateAuctionReq{
			InitialBid:  initial,
			BidStep:     step,
			EndTime:     endTime,
			BuyItNow:    buyNow,
			CurrencyID:  currencyID,
			Description: auctionDesc,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Record.Message)
		fmt.Printf("Fund your auction by sending to %s\n", res.Address)
		return nil
	},
}

var auctionsCmd = &cobra.Command{
	Use:   "auctions",
	Short: "Lists the live auctions",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().ListAuctions(context.Background())
		if err != nil {
			return err
		}

		for _, box := range res.Auctions {
			endTime, err := box.EndTime()
			if err != nil {
				return err
			}
			fmt.Printf(
				"%s  bid=%s  ends=%s\n",
				box.BoxID,
				chain.FormatCoin(box.CurrentBid()),
				time.Unix(endTime/1000, 0).Format(time.RFC3339),
			)
		}
		return nil
	},
}

func init() {
	newAuctionCmd.Flags().StringVar(&auctionStep, "step", "0.1", "Minimum bid increment in coins")
	newAuctionCmd.Flags().StringVar(&auctionBuyNow, "buy-it-now", "0", "Buy-it-now price in coins, 0 to disable")
	newAuctionCmd.Flags().StringVar(&auctionCurrency, "currency", "", "Bidding currency token id, empty for the native coin")
	newAuctionCmd.Flags().StringVar(&auctionDesc, "description", "", "Auction description")
	newAuctionCmd.Flags().DurationVar(&auctionDuration, "duration", 24*time.Hour, "Time until the auction ends")
	rootCmd.AddCommand(newAuctionCmd)
	rootCmd.AddCommand(auctionsCmd)
}
