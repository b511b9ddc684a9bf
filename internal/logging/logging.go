package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   out,
		Level: level,
	}

	return &logger
}

// OpenLogOutput returns stderr when path is empty, otherwise the file at
// path opened for appending. The returned close func is always non-nil.
func OpenLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
