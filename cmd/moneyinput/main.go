package main

import (
	"os"

	"github.com/govalues/moneyinput/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
