package globals

import "log/slog"

// DebugFunc receives non-fatal diagnostics, in the manner of poppler's
// set_debug_error_function.
type DebugFunc func(message string)

var debugFn DebugFunc = func(message string) {
	slog.Debug("poppler", "msg", message)
}

// SetDebugErrorFunc installs fn as the sink for non-fatal diagnostics
// emitted by the bindings. The default logs through slog at debug
// level. Install the hook during program initialization; the bindings
// may call it from any goroutine afterwards.
func SetDebugErrorFunc(fn DebugFunc) {
	if fn == nil {
		return
	}
	debugFn = fn
}

// DebugError reports a non-fatal condition to the installed hook.
// The binding packages call this where the native library would
// print to stderr.
func DebugError(message string) {
	debugFn(message)
}
