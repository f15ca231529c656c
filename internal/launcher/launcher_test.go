package launcher_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	. "github.com/dogmatiq/bbapp/internal/launcher"
	"github.com/dogmatiq/bbapp/internal/listenport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("type Launcher", func() {
	var (
		ctx      context.Context
		cancel   context.CancelFunc
		launcher *Launcher
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		DeferCleanup(cancel)

		launcher = &Launcher{
			Port: 0,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, "hello")
			}),
			Logger:          slog.New(slog.NewTextHandler(GinkgoWriter, nil)),
			ShutdownTimeout: time.Second,
		}
	})

	start := func() <-chan error {
		result := make(chan error, 1)
		go func() {
			result <- launcher.Run(ctx)
		}()

		select {
		case <-launcher.Ready():
		case err := <-result:
			Fail(fmt.Sprintf("launcher stopped before becoming ready: %v", err))
		case <-ctx.Done():
			Fail("timed out waiting for launcher to become ready")
		}

		return result
	}

	get := func(port int) string {
		client := &http.Client{Timeout: 2 * time.Second}
		res, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
		Expect(err).ShouldNot(HaveOccurred())
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		Expect(err).ShouldNot(HaveOccurred())

		return string(body)
	}

	boundPort := func() int {
		return launcher.Addr().(*net.TCPAddr).Port
	}

	Describe("func Run()", func() {
		It("serves requests using the handler", func() {
			start()
			Expect(get(boundPort())).To(Equal("hello"))
		})

		It("returns nil when the context is canceled", func() {
			result := start()
			cancel()
			Eventually(result).Should(Receive(BeNil()))
		})

		It("stops accepting connections after shutdown", func() {
			result := start()
			port := boundPort()

			cancel()
			Eventually(result).Should(Receive())

			_, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), time.Second)
			Expect(err).Should(HaveOccurred())
		})

		It("returns an error if the port is already in use", func() {
			lis, err := net.Listen("tcp", ":0")
			Expect(err).ShouldNot(HaveOccurred())
			defer lis.Close()

			launcher.Port = listenport.Port(lis.Addr().(*net.TCPAddr).Port)

			err = launcher.Run(ctx)
			Expect(err).Should(HaveOccurred())
			Expect(launcher.Addr()).To(BeNil())
			Expect(launcher.State()).To(Equal(NotStarted))
		})

		It("returns an error if the port is negative", func() {
			launcher.Port = -1

			err := launcher.Run(ctx)
			Expect(err).Should(HaveOccurred())
		})

		It("returns an error if called more than once", func() {
			start()

			err := launcher.Run(ctx)
			Expect(err).To(MatchError(ErrAlreadyStarted))
		})
	})

	Describe("func State()", func() {
		It("transitions from not started to running to stopped", func() {
			Expect(launcher.State()).To(Equal(NotStarted))

			result := start()
			Expect(launcher.State()).To(Equal(Running))

			cancel()
			Eventually(result).Should(Receive())
			Expect(launcher.State()).To(Equal(Stopped))
		})

		It("remains not started if the listener cannot be bound", func() {
			launcher.Port = -1

			Expect(launcher.Run(ctx)).ShouldNot(Succeed())
			Expect(launcher.State()).To(Equal(NotStarted))
		})
	})

	Describe("func Addr()", func() {
		It("returns nil before the listener is bound", func() {
			Expect(launcher.Addr()).To(BeNil())
		})

		It("returns the address chosen by the operating system when the port is zero", func() {
			start()
			Expect(boundPort()).To(BeNumerically(">", 0))
		})
	})

	Context("when the port is resolved from the environment", func() {
		resolve := func(values map[string]string) listenport.Port {
			port, err := listenport.Resolve(func(key string) (string, bool) {
				v, ok := values[key]
				return v, ok
			})
			Expect(err).ShouldNot(HaveOccurred())
			return port
		}

		skipIfInUse := func(port listenport.Port) {
			lis, err := net.Listen("tcp", port.ListenAddress())
			if err != nil {
				Skip(fmt.Sprintf("port %s is not available on this host", port))
			}
			lis.Close()
		}

		It("accepts connections on the port given by PORT", func() {
			launcher.Port = resolve(map[string]string{"PORT": "9090"})
			skipIfInUse(launcher.Port)

			start()
			Expect(boundPort()).To(Equal(9090))
			Expect(get(9090)).To(Equal("hello"))
		})

		It("accepts connections on port 8080 when PORT is not set", func() {
			launcher.Port = resolve(nil)
			skipIfInUse(launcher.Port)

			start()
			Expect(boundPort()).To(Equal(8080))
			Expect(get(8080)).To(Equal("hello"))
		})
	})
})

var _ = Describe("type State", func() {
	DescribeTable(
		"func String()",
		func(s State, expect string) {
			Expect(s.String()).To(Equal(expect))
		},
		Entry("not started", NotStarted, "not started"),
		Entry("running", Running, "running"),
		Entry("stopped", Stopped, "stopped"),
		Entry("unknown", State(99), "unknown"),
	)
})
