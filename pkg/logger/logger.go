package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide logger. Development mode switches to
// the console encoder for readable local output.
func NewLogger(development bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
