package main

import (
	"os"

	"github.com/jha9262/SafePath-AI/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
