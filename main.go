package main

import (
	"os"

	"github.com/slidecast/slidecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
