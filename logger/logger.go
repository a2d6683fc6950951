// Package logger configures the logrus logger shared by the strider commands.
package logger

import (
	"io"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out at the named level ("debug", "info", ...).
func New(lvl string, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	l := logrus.New()
	l.Formatter = &nested.Formatter{
		TimestampFormat: "2006/01/02 15:04:05",
		HideKeys:        true,
		FieldsOrder:     []string{"component"},
	}
	l.Out = out
	l.Level = level
	return l, nil
}

// Component tags entries with the component that logged them.
func Component(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
