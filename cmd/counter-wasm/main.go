//go:build js && wasm

package main

import (
	"log/slog"

	"github.com/vcrobe/elmish/apps/counter"
	"github.com/vcrobe/elmish/console"
	"github.com/vcrobe/elmish/jsdom"
	"github.com/vcrobe/elmish/runtime"
)

func main() {
	logger := slog.New(console.NewHandler(slog.LevelInfo))
	slog.SetDefault(logger)

	_, err := runtime.Mount(jsdom.New(), 0, counter.Update, counter.View, "app",
		runtime.WithLogger(logger),
		runtime.WithScheduler(jsdom.Scheduler{}),
	)
	if err != nil {
		console.Error("Failed to mount counter:", err.Error())
		panic(err)
	}

	// Keep the Go program running
	select {}
}
