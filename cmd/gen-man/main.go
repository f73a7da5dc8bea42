// gen-man generates roff-formatted man pages from the exepath command tree.
// Run with: go run ./cmd/gen-man
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/alexcatdad/exepath/internal/cli"
)

const outDir = "man"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating directory: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	root := cli.NewRootCmd("")
	root.DisableAutoGenTag = true

	header := &doc.GenManHeader{
		Section: "1",
		Date:    &now,
		Source:  "exepath",
		Manual:  "User Commands",
	}
	if err := doc.GenManTree(root, header, outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error generating man pages: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated man pages in %s/\n", outDir)
}
