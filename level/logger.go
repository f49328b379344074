package level

import (
	"io"
	"log"
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger sets the logger for the level loaders.  Output is discarded by
// default.
func SetLogger(l *log.Logger) {
	logger = l
}
