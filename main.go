// Package main is the entry point for seam.
package main

import (
	"github.com/samber/lo"
	"github.com/seam-cli/seam/cmd"
	"github.com/seam-cli/seam/config"
	"github.com/seam-cli/seam/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
