package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	maxFileSizeMB = 5
	maxBackups    = 3
	maxAgeDays    = 28
)

// Setup configures logger for terminal output at the given level. When file
// is not empty, entries are also written as JSON to a size-rotated file.
func Setup(logger *logrus.Logger, level logrus.Level, file string) error {
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if file == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   file,
		MaxSize:    maxFileSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	logger.AddHook(hook)
	return nil
}
