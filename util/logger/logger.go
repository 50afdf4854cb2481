package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Hooks: make(logger.LevelHooks),
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// SetLevel parses a logrus level name ("debug", "info", ...) and applies it to L.
func SetLevel(name string) error {
	lvl, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	L.SetLevel(lvl)
	return nil
}
