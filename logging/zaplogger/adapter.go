package zaplogger

import (
	"github.com/loxkit/astgen/logging"
	"go.uber.org/zap"
)

// ZapAdapter adapts zap.SugaredLogger to implement logging.Logger.
// This lets the generator packages stay logger-agnostic while the CLI
// wires in zap.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a logger adapter from a zap SugaredLogger.
func NewZapAdapter(zapLogger *zap.SugaredLogger) logging.Logger {
	if zapLogger == nil {
		return logging.NewNopLogger()
	}
	return &ZapAdapter{logger: zapLogger}
}

// Info implements logging.Logger.Info using zap's Infow.
func (z *ZapAdapter) Info(msg string, fields ...interface{}) {
	z.logger.Infow(msg, fields...)
}

// Warn implements logging.Logger.Warn using zap's Warnw.
func (z *ZapAdapter) Warn(msg string, fields ...interface{}) {
	z.logger.Warnw(msg, fields...)
}

// Error implements logging.Logger.Error using zap's Errorw.
func (z *ZapAdapter) Error(msg string, fields ...interface{}) {
	z.logger.Errorw(msg, fields...)
}
