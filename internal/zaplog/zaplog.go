// Package zaplog centralizes the zap.Logger construction the rest of the
// module depends on, so every package that wants structured logging takes
// a *zap.SugaredLogger by injection instead of constructing its own.
package zaplog

import "go.uber.org/zap"

// Nop returns a logger that discards everything, used as the default when
// a caller does not supply one via mbox.WithLogger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// NewDevelopment returns a human-readable logger suitable for the CLI
// front end, writing to stderr with a capital-level, color-free encoder.
func NewDevelopment() (*zap.SugaredLogger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
