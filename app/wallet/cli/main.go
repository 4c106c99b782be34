package main

import "github.com/ardanlabs/coinledger/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
