package launcher

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dogmatiq/bbapp/internal/listenport"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout is the shutdown timeout used when
// [Launcher.ShutdownTimeout] is zero.
const DefaultShutdownTimeout = 10 * time.Second

// ErrAlreadyStarted is returned by [Launcher.Run] if it has already been
// called.
var ErrAlreadyStarted = errors.New("launcher has already been started")

// State is the lifecycle state of a [Launcher].
type State int32

const (
	// NotStarted is the state of a launcher before Run is called.
	NotStarted State = iota

	// Running means the listener is bound and requests are being served.
	Running

	// Stopped means the server has shut down.
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Launcher binds a TCP listener on a port and serves HTTP requests on it.
type Launcher struct {
	Port            listenport.Port
	Handler         http.Handler
	Logger          *slog.Logger
	ShutdownTimeout time.Duration

	init    sync.Once
	ready   chan struct{}
	started atomic.Bool
	state   atomic.Int32
	addr    atomic.Value // net.Addr
}

// Run listens on l.Port and serves requests until ctx is canceled, at which
// point the server is shut down gracefully.
func (l *Launcher) Run(ctx context.Context) error {
	l.init.Do(l.setup)

	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	lis, err := net.Listen("tcp", l.Port.ListenAddress())
	if err != nil {
		return err
	}
	defer lis.Close()

	l.addr.Store(lis.Addr())
	l.state.Store(int32(Running))
	defer l.state.Store(int32(Stopped))
	close(l.ready)

	l.logger().InfoContext(
		ctx,
		"listening for HTTP requests",
		slog.String("address", lis.Addr().String()),
	)

	server := &http.Server{
		Handler:           l.Handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx),
			l.shutdownTimeout(),
		)
		defer cancel()

		l.logger().InfoContext(ctx, "shutting down HTTP server")

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return err
		}

		return nil
	})

	g.Go(func() error {
		if err := server.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return g.Wait()
}

// Ready returns a channel that is closed once the listener has been bound.
func (l *Launcher) Ready() <-chan struct{} {
	l.init.Do(l.setup)
	return l.ready
}

// Addr returns the address of the bound listener, or nil if the listener has
// not been bound.
func (l *Launcher) Addr() net.Addr {
	addr, _ := l.addr.Load().(net.Addr)
	return addr
}

// State returns the current lifecycle state.
func (l *Launcher) State() State {
	return State(l.state.Load())
}

func (l *Launcher) setup() {
	l.ready = make(chan struct{})
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

func (l *Launcher) shutdownTimeout() time.Duration {
	if l.ShutdownTimeout == 0 {
		return DefaultShutdownTimeout
	}
	return l.ShutdownTimeout
}
