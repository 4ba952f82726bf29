//go:build !(js && wasm)

package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Output receives console lines in non-WASM builds.
var Output io.Writer = os.Stderr

// Warn prints its arguments like console.warn would.
func Warn(args ...any) {
	write(slog.LevelWarn, fmt.Sprintln(args...))
}

// Error prints its arguments like console.error would.
func Error(args ...any) {
	write(slog.LevelError, fmt.Sprintln(args...))
}

func write(level slog.Level, line string) {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	fmt.Fprintf(Output, "%s %s\n", level, line)
}
