package cmd

import (
	"context"
	"fmt"
	"github.com/arkadda/seri/api"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

var bidCmd = &cobra.Command{
	Use:   "bid [box-id] [amount]",
	Short: "Places a bid on an auction box",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.New("invalid bid amount")
		}

		res, err := apiClient().CreateBid(context.Background(), &api.CreateBidReq{
			BoxID:  args[0],
			Amount: amount,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Record.Message)
		fmt.Printf("Fund your bid by sending to %s\n", res.Address)
		if res.Record.Info.Extended {
			newEnd := time.Unix(res.Record.Info.EndTime/1000, 0)
			fmt.Printf("Your bid extends the auction to %s.\n", newEnd.Format(time.RFC3339))
		}
		return nil
	},
}

var bidsCmd = &cobra.Command{
	Use:   "bids",
	Short: "Lists your pending bids",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().ListBids(context.Background())
		if err != nil {
			return err
		}

		for _, bid := range res.Bids {
			kind := "bid"
			if bid.Info.IsFirst {
				kind = "auction"
			}
			fmt.Printf(
				"%s  %s  amount=%d %s  status=%s\n",
				bid.ID,
				kind,
				bid.Info.Amount,
				bid.Info.Currency,
				bid.Info.Status,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bidCmd)
	rootCmd.AddCommand(bidsCmd)
}
