// Command logmail sends log files as email.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/logmail/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(os.Stderr, err))
		os.Exit(1)
	}
}
