package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var openingBalance int64

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := struct {
			Address  string `json:"address"`
			Balance  int64  `json:"balance"`
			Password string `json:"password"`
		}{
			Address:  address,
			Balance:  openingBalance,
			Password: password,
		}

		var resp status
		if err := call(http.MethodPost, "/v1/wallet/new", req, &resp); err != nil {
			return err
		}

		fmt.Println(resp.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().Int64VarP(&openingBalance, "balance", "b", 0, "Opening balance of the wallet.")
}
