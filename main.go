package main

import (
	"os"

	"github.com/ScottGunn22/dirchecker/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
