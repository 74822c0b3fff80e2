package main

import (
	"os"

	"github.com/msto63/mRACF/cmd/racfls/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
