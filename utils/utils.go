package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLog creates the logger for one component. Output goes to <dir><name>.log,
// or to stderr when dir is empty.
func NewLog(dir, name, level string) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if dir != "" {
		fileName := fmt.Sprintf("%s%s.log", dir, name)
		file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return nil, errors.Wrapf(err, "open log %s", fileName)
		}
		logger.SetOutput(file)
	}
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logger.WithField("log_level", level).Warn("unknown log level, ignoring")
		} else {
			logger.SetLevel(lvl)
		}
	}
	return logger.WithField("type", name), nil
}
