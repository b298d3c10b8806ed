package log

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

//nolint:gochecknoglobals
var base = func() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}()

// InitGlobals builds the process logger and installs it as the base for
// [New] and as the zerolog context fallback. It returns the logger so the
// caller can attach it to a context.
func InitGlobals(level zerolog.Level, logJSON, noColor bool) *zerolog.Logger {
	var l zerolog.Logger

	if logJSON {
		l = zerolog.New(os.Stderr).Level(level)
	} else {
		w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
		l = zerolog.New(w).Level(level)
	}

	SetBaseLogger(&l)

	return &l
}

// SetBaseLogger replaces the logger used by [New] and the zerolog context
// fallback. Tests point it at a buffer to observe trace output.
func SetBaseLogger(l *zerolog.Logger) {
	base = l
	zerolog.DefaultContextLogger = l
}

// Logger is a scoped logger.
type Logger struct {
	zl zerolog.Logger
}

// New returns a logger with the given scope.
func New(scope string) *Logger {
	return &Logger{zl: base.With().Str("s", scope).Logger()}
}

// Ctx returns a logger from the context, falling back to the base logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: *zerolog.Ctx(ctx)}
}

// AttrOption adds a structured attribute to a logger.
type AttrOption func(l zerolog.Context) zerolog.Context

func Op(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

func Count(n int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int("count", n)
	}
}

func Scalar(v uint32) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Uint32("scalar", v)
	}
}

func Elapsed(dur time.Duration) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Dur("elapsed", dur)
	}
}

// With returns a copy of the logger with the attributes attached.
func (l *Logger) With(opts ...AttrOption) *Logger {
	zc := l.zl.With()
	for _, opt := range opts {
		zc = opt(zc)
	}

	return &Logger{zl: zc.Logger()}
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Timestamp().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Timestamp().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Timestamp().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Timestamp().Msg(msg)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Timestamp().Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Timestamp().Msgf(msg, args...)
}
