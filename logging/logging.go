package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"hockeyseo/config"

	"github.com/sirupsen/logrus"
)

// InitLogger points the standard logrus logger at cfg.Output with the
// configured level and format. The returned func closes the log file when
// one was opened; it is a no-op for stdout and stderr.
func InitLogger(cfg config.LoggingConfig) func() {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', using 'info' instead. Error: %v", cfg.Level, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	out, closeOutput := openOutput(cfg.Output)
	logrus.SetFormatter(newFormatter(cfg.Format, out))
	logrus.SetOutput(out)
	logrus.WithFields(logrus.Fields{
		"level":  level.String(),
		"format": cfg.Format,
	}).Debug("Logger initialized")

	return closeOutput
}

func newFormatter(format string, out io.Writer) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	}
	_, isFile := out.(*os.File)
	return &logrus.TextFormatter{
		FullTimestamp: true,
		// colors only make sense on a terminal
		DisableColors: isFile && out != os.Stdout && out != os.Stderr,
	}
}

func openOutput(output string) (io.Writer, func()) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, func() {}
	case "stderr":
		return os.Stderr, func() {}
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Warnf("Failed to open log file '%s', using 'stdout' instead. Error: %v", output, err)
		return os.Stdout, func() {}
	}
	return file, func() {
		logrus.SetOutput(os.Stderr)
		if err := file.Close(); err != nil {
			logrus.Warnf("Failed to close log file '%s': %v", output, err)
		}
	}
}
