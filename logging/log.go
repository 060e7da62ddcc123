// Package logging adapts a micrologger to the io.Writer the gorilla
// access-log handler expects.
package logging

import (
	"strings"

	"github.com/giantswarm/micrologger"
)

type MicrologgerWrapper struct {
	logger micrologger.Logger
}

func NewMicrologgerWrapper(logger micrologger.Logger) MicrologgerWrapper {
	return MicrologgerWrapper{
		logger: logger,
	}
}

func (l MicrologgerWrapper) Write(p []byte) (int, error) {
	l.logger.Log("level", "info", "type", "http log", "message", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
