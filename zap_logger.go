package restify

import "go.uber.org/zap"

// zapLogger adapts a zap.Logger to the Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps a zap.Logger for use with WithLogger. A nil logger
// degrades to a no-op.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Debug(format string, args ...any) {
	z.s.Debugf(format, args...)
}

func (z *zapLogger) Info(format string, args ...any) {
	z.s.Infof(format, args...)
}

func (z *zapLogger) Error(format string, args ...any) {
	z.s.Errorf(format, args...)
}
