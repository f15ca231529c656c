package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dogmatiq/bbapp/internal/launcher"
	"github.com/dogmatiq/bbapp/internal/listenport"
	"github.com/dogmatiq/ferrite"
	"github.com/dogmatiq/imbue"
)

var (
	shutdownTimeout = ferrite.
		Duration("SHUTDOWN_TIMEOUT", "the maximum time to wait for in-flight HTTP requests when shutting down").
		WithMinimum(1 * time.Millisecond).
		WithDefault(launcher.DefaultShutdownTimeout).
		Required()
)

func init() {
	imbue.With3(
		container,
		func(
			ctx imbue.Context,
			port listenport.Port,
			handler http.Handler,
			logger *slog.Logger,
		) (*launcher.Launcher, error) {
			return &launcher.Launcher{
				Port:            port,
				Handler:         handler,
				ShutdownTimeout: shutdownTimeout.Value(),
				Logger: logger.With(
					slog.String("component", "launcher"),
				),
			}, nil
		},
	)
}
