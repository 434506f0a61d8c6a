// Command revisaai is the command line client of RevisaAí. It drives the
// application providers against the configured backend, or against the
// in-memory mock data when no backend is configured.
package main

import (
	"fmt"
	"os"
)

func main() {
	c := &cli{out: os.Stdout}
	if err := execute(c, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
