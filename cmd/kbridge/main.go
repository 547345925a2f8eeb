// Command kbridge bridges a remote knowledge-base service into AI
// assistants, as a CLI and as an MCP tool server.
package main

import (
	"fmt"
	"os"

	"github.com/tidemark-labs/kbridge/internal/adapters/driving/cli"
)

// version is injected at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
