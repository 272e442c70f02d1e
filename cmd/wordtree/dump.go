package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdDump = &cli.Command{
	Name:  "dump",
	Usage: "print the cached glossary",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "keys",
			Usage: "print sorted words, one per line, instead of the tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		g, path, err := loadGlossary(cctx)
		if err != nil {
			return err
		}
		out := cctx.App.Writer
		fmt.Fprintf(out, "%s: %d entries, depth %d\n", path, g.Len(), g.Depth())

		if !cctx.Bool("keys") {
			return g.Fprint(out)
		}
		for _, w := range g.Words() {
			fmt.Fprintln(out, w)
		}
		return nil
	},
}
