// cmd/routh/main.go
package main

import (
	"os"

	"github.com/katalvlaran/stability/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
