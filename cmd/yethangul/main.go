package main

import (
	"fmt"
	"os"

	"yethangul/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yethangul: %v\n", err)
		os.Exit(1)
	}
}
