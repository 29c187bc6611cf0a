package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Init sets up the standard logrus logger with the given level.
// An unknown level falls back to info.
func Init(level string) {
	InitWithOutput(level, os.Stdout)
}

// InitWithOutput is Init with an explicit destination
func InitWithOutput(level string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(out)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("Invalid log level specified, assuming info: [%s]", level)
		return
	}
	log.SetLevel(lvl)
}
