// Command allroutes prints every simple route between two bus stops.
//
// With no arguments it runs the built-in first dataset's default query.
// See --help for flags; every flag can also be set as BUSROUTE_<FLAG>,
// directly or through a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/busroute/internal/cli"
)

func main() {
	if err := cli.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewAllRoutesCommand(os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}
