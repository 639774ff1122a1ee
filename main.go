package main

import (
	"os"

	"github.com/adalundhe/boardroom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
