package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var newPassword string

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the password of your wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := struct {
			Address     string `json:"address"`
			OldPassword string `json:"old_password"`
			NewPassword string `json:"new_password"`
		}{
			Address:     address,
			OldPassword: password,
			NewPassword: newPassword,
		}

		var resp status
		if err := call(http.MethodPost, "/v1/wallet/password", req, &resp); err != nil {
			return err
		}

		fmt.Println(resp.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	passwordCmd.Flags().StringVarP(&newPassword, "new", "n", "", "The new password.")
}
