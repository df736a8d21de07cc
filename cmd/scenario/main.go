// Package main provides a CLI for running Lua scenario scripts.
package main

import (
	"flag"
	"os"

	"github.com/railbaron/stockround/internal/platform/config"

	scenariocmd "github.com/railbaron/stockround/internal/cmd/scenario"
)

func main() {
	cfg, err := scenariocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := scenariocmd.Run(cfg, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
