package main

import (
	"os"

	"github.com/sallie-oss/sallie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
