package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	to     string
	amount int64
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := struct {
			From     string `json:"from"`
			Password string `json:"password"`
			To       string `json:"to"`
			Amount   int64  `json:"amount"`
		}{
			From:     address,
			Password: password,
			To:       to,
			Amount:   amount,
		}

		var resp status
		if err := call(http.MethodPost, "/v1/transaction/new", req, &resp); err != nil {
			return err
		}

		fmt.Println(resp.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Address of the receiving wallet.")
	sendCmd.Flags().Int64VarP(&amount, "amount", "v", 0, "Amount to send.")
}
