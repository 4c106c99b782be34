package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain held by the node.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var blocks any
		if err := call(http.MethodGet, "/v1/blockchain/get", nil, &blocks); err != nil {
			return err
		}

		return printJSON(blocks)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the hashes and links of the chain held by the node.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Valid  bool `json:"valid"`
			Blocks int  `json:"blocks"`
		}

		if err := call(http.MethodGet, "/v1/blockchain/validate", nil, &resp); err != nil {
			return err
		}

		fmt.Printf("valid: %t blocks: %d\n", resp.Valid, resp.Blocks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(validateCmd)
}
