package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the transactions of your wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var recs []struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount uint64 `json:"amount"`
		}

		if err := call(http.MethodPost, "/v1/wallet/transactions", credentials{Address: address, Password: password}, &recs); err != nil {
			return err
		}

		for _, rec := range recs {
			fmt.Printf("%s -> %s: %d\n", rec.From, rec.To, rec.Amount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
