package cmd

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"time"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the daemon's status",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().Status(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Network: %s\n", res.Network)
		fmt.Printf("Address: %s\n", res.Address)
		fmt.Printf("Height:  %d\n", res.Block.Height)
		fmt.Printf("Tip:     %s\n", time.Unix(res.Block.Timestamp/1000, 0).Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
