package launcher

import (
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

// verbosityLevels maps the --log.verbosity integer onto logrus levels,
// mirroring the flag's documented scale.
var verbosityLevels = []logrus.Level{
	logrus.FatalLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// setupLogging builds the tool's logger from the logging flags. When a
// Sentry DSN is configured, error-and-above entries are mirrored there; a
// broken DSN downgrades to a warning rather than blocking the load.
func setupLogging(ctx *cli.Context) *logrus.Logger {
	log := logrus.New()

	if ctx.String("log.format") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	v := ctx.Int("log.verbosity")
	if v < 0 {
		v = 0
	}
	if v >= len(verbosityLevels) {
		v = len(verbosityLevels) - 1
	}
	log.SetLevel(verbosityLevels[v])

	if dsn := ctx.String("sentry-dsn"); dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			log.WithError(err).Warn("sentry reporting disabled")
		} else {
			log.AddHook(hook)
		}
	}

	return log
}
