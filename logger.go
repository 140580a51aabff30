package gfcolor

import (
	"log/slog"
	"sync/atomic"
)

var silent = slog.New(slog.DiscardHandler)

var current_logger atomic.Pointer[slog.Logger]

func init() { current_logger.Store(silent) }

// SetLogger sets the logger gfcolor reports to. Nothing is reported until it
// is called, passing nil silences gfcolor again. Records are emitted for:
//
//   - [slog.LevelDebug]: a name that is neither built-in nor registered was
//     resolved by Registry.Named to an identity space
//   - [slog.LevelWarn]: a space passed to WithColorSpaces clashed with an
//     existing definition and was not registered
//   - [slog.LevelError]: a batch conversion buffer was empty or not a whole
//     number of pixels
//
// It may be called concurrently with conversions.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current_logger.Store(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger { return current_logger.Load() }

func log_identity_fallback(name string) {
	Logger().Debug("gfcolor: unregistered color space name, using identity", "name", name)
}

func log_rejected_preload(cs ColorSpace, err error) {
	Logger().Warn("gfcolor: ignoring color space", "name", cs.Name(), "error", err)
}

func log_bad_buffer(src, dst ColorSpace, length, stride int) {
	Logger().Error("gfcolor: invalid buffer size for batch conversion", "length", length, "stride", stride, "src", src.Name(), "dst", dst.Name())
}
