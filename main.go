package main

import (
	"os"

	"github.com/fquintieri/storegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
