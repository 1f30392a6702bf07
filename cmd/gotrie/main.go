package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jakobknauer/gotrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())

	appCtx, err := cli.NewContext(cli.CLI.Config, cli.CLI.Debug)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := ctx.Run(appCtx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
