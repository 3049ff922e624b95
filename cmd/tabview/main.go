// Command tabview is a terminal viewer for tabular datasets: search, sort
// and paginate JSON, YAML or CSV files from the command line or an
// interactive browser.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/tabview/internal/cli"
	"github.com/rshade/tabview/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
