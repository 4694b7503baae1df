package main

import (
	"os"

	"github.com/hrygo/tiempo/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
