// Command nutrigym serves the journal over HTTP and hosts operator tasks.
package main

import (
	"fmt"
	"os"

	"github.com/heartmarshall/nutrigym-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
