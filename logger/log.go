package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	log *logrus.Logger
	Log *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	Init("dev")
}

// Init sets up the shared logger. In production logs are emitted as json so
// that whatever collects stderr can parse them, in development they stay
// plain text for readability.
func Init(env string) {
	log = logrus.New()
	log.SetOutput(os.Stderr)
	if env == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	Log = log.WithFields(logrus.Fields{
		"service": "snapfeed",
		"env":     env,
	})
}
