package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// LogFlags returns the logging and error-reporting flags shared across
// commands.

func LogFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "sentry-dsn",
			Usage: "Sentry DSN for error reporting (disabled when empty)",
		},
	}
}
