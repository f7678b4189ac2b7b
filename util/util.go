package util

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
)

// ConfigureLogging points logrus at out and picks a formatter. Output that is
// not a TTY (ie. stderr captured by a browser) gets JSON.
func ConfigureLogging(debug bool, out *os.File) {
	logrus.SetOutput(out)

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if !terminal.IsTerminal(int(out.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
