// Command boruvka drives an approximate dynamic connectivity engine
// from the command line: either over a synthetic divisor graph, for a
// quick correctness demo, or over a stream of edge events read from a
// file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "boruvka",
		Usage: "approximate dynamic graph connectivity via L0 sketches",
		Commands: []*cli.Command{
			divisorCommand(),
			streamCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "boruvka:", err)
		os.Exit(1)
	}
}
