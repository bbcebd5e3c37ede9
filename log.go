package sdlimdraw

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMutex sync.RWMutex
	logger      logrus.FieldLogger = logrus.StandardLogger().WithField("pkg", "sdlimdraw")
)

// SetLogger replaces the logger used by the package.
// Passing nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger().WithField("pkg", "sdlimdraw")
	}

	loggerMutex.Lock()
	logger = l
	loggerMutex.Unlock()
}

func log() logrus.FieldLogger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return logger
}
