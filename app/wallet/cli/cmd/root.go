// Package cmd contains wallet app
package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	url      string
	address  string
	password string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "Address of the wallet.")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password of the wallet.")
}

var rootCmd = &cobra.Command{
	Use:          "wallet",
	Short:        "Your simple ledger wallet",
	SilenceUsage: true,
}

// Execute runs the wallet command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// =============================================================================

// client is shared by the commands. Mining can take a while on a node with
// a high difficulty.
var client = http.Client{
	Timeout: 5 * time.Minute,
}

// nodeError is the error document returned by the node.
type nodeError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// call sends the request document to the node and decodes the response
// into resp when one is provided.
func call(method string, path string, req any, resp any) error {
	var body bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&body).Encode(req); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	r, err := http.NewRequest(method, url+path, &body)
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", "application/json")

	res, err := client.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var ne nodeError
		if err := json.NewDecoder(res.Body).Decode(&ne); err != nil {
			return fmt.Errorf("node returned status %d", res.StatusCode)
		}

		if len(ne.Fields) > 0 {
			return fmt.Errorf("%s: %v", ne.Error, ne.Fields)
		}
		return errors.New(ne.Error)
	}

	if resp == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// printJSON writes the value as indented json.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type status struct {
	Status string `json:"status"`
}

type credentials struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}
