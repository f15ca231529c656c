package main

import (
	"fmt"

	"github.com/dogmatiq/bbapp/internal/listenport"
	"github.com/dogmatiq/ferrite"
	"github.com/dogmatiq/imbue"
)

var (
	// httpListenPort documents PORT alongside the other variables. The value
	// itself is resolved by [listenport.FromEnvironment], which reports an
	// invalid value as a [listenport.InvalidConfigurationError].
	httpListenPort = ferrite.
		Signed[int32](listenport.EnvVar, "the port to listen on for HTTP requests").
		WithDefault(int32(listenport.Default)).
		Required()
)

func init() {
	imbue.With0(
		container,
		func(
			ctx imbue.Context,
		) (listenport.Port, error) {
			port, err := listenport.FromEnvironment()
			if err != nil {
				return 0, err
			}

			if v := httpListenPort.Value(); int32(port) != v {
				return 0, fmt.Errorf("%s resolved to both %d and %d", listenport.EnvVar, port, v)
			}

			return port, nil
		},
	)
}
