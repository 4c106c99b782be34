package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending transactions, rewarding your wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := struct {
			RewardAddress string `json:"reward_address"`
		}{
			RewardAddress: address,
		}

		var blk any
		if err := call(http.MethodPost, "/v1/transaction/mine", req, &blk); err != nil {
			return err
		}

		return printJSON(blk)
	},
}

func init() {
	rootCmd.AddCommand(mineCmd)
}
