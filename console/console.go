//go:build js && wasm

package console

import (
	"log/slog"
	"syscall/js"
)

func Warn(args ...any) {
	console := js.Global().Get("console")
	console.Call("warn", args...)
}

func Error(args ...any) {
	console := js.Global().Get("console")
	console.Call("error", args...)
}

// write sends one formatted record to the browser console method that
// matches its level.
func write(level slog.Level, line string) {
	method := "log"
	switch {
	case level >= slog.LevelError:
		method = "error"
	case level >= slog.LevelWarn:
		method = "warn"
	case level < slog.LevelInfo:
		method = "debug"
	}
	js.Global().Get("console").Call(method, line)
}
