package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your balance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Address string `json:"address"`
			Balance uint64 `json:"balance"`
		}

		if err := call(http.MethodPost, "/v1/wallet/balance", credentials{Address: address, Password: password}, &resp); err != nil {
			return err
		}

		fmt.Println("For Wallet:", resp.Address)
		fmt.Println(resp.Balance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
