package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dogmatiq/bbapp/internal/launcher"
	"github.com/dogmatiq/bbapp/internal/listenport"
	"github.com/dogmatiq/ferrite"
	"github.com/dogmatiq/imbue"
)

var (
	// version is the current version, set automatically by the makefiles.
	version string

	// container is the dependency injection container.
	container = imbue.New()
)

func main() {
	// PORT is checked before ferrite validates the environment so that an
	// invalid value is reported as an invalid port configuration.
	if _, err := listenport.FromEnvironment(); err != nil {
		exit(err)
	}

	ferrite.Init()

	if err := run(); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	defer container.Close()

	g := container.WaitGroup(ctx)

	imbue.Go1(
		g,
		func(
			ctx context.Context,
			l *launcher.Launcher,
		) error {
			return l.Run(ctx)
		},
	)

	return g.Wait()
}
