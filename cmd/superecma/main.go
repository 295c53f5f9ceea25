package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/agenthands/superecma/cmd/superecma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrDiagnostics) {
			fmt.Fprintf(os.Stderr, "superecma: %v\n", err)
		}
		os.Exit(1)
	}
}
