// Command fsaudit reports duplicate file names, large files and suspicious
// file names under a directory tree.
package main

import (
	"os"

	"github.com/idelchi/fsaudit/internal/cli"
	"github.com/idelchi/fsaudit/internal/logger"
)

// Version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
