package main

import (
	"os"

	"github.com/pseudolang/plin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
