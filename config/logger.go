package config

import(
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ParseLevel(level string) (zapcore.Level, error) {
	l,err := zapcore.ParseLevel(level)
	if err != nil { return l, fmt.Errorf("config: log level: %w", err) }
	return l, nil
}

// NewLogger gives a development logger (console, with callers) at debug, and a JSON
// production logger at anything else.
func NewLogger(level string) (*zap.Logger, error) {
	l,err := ParseLevel(level)
	if err != nil { return nil, err }

	if l == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(l)
	return zc.Build()
}
