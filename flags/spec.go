package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// SpecFlags selects which chain specification document the tool works on.

func SpecFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "spec",
			Usage: "Path to the chain specification JSON document",
		},
		cli.BoolFlag{
			Name:  "testnet",
			Usage: "Use the built-in local testnet specification instead of a file",
		},
	}
}
