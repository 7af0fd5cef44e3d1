package main

import (
	"os"

	"github.com/ermekov/tenderscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
