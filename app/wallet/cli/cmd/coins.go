package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var coins int64

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Add coins to your wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			Amount   int64  `json:"amount"`
		}{
			Address:  address,
			Password: password,
			Amount:   coins,
		}

		var resp status
		if err := call(http.MethodPost, "/v1/wallet/coins", req, &resp); err != nil {
			return err
		}

		fmt.Println(resp.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coinsCmd)
	coinsCmd.Flags().Int64VarP(&coins, "amount", "v", 0, "Amount of coins to add.")
}
