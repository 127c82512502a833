// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// New creates a configured application logger writing to w.
// A nil w means stderr, keeping stdout free for command output.
func New(level logrus.Level, w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "msg",
		},
	})
	return l
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ParseLevel maps a config value to a level. Empty means DefaultLevel.
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
