package listenport

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	// EnvVar is the name of the environment variable that specifies the port.
	EnvVar = "PORT"

	// Default is the port used when [EnvVar] is not set.
	Default Port = 8080
)

// Port is a TCP port number.
//
// No range validation is performed, the value is passed to the listener
// as-is.
type Port int

// ListenAddress returns the address to bind to in order to listen on p on all
// interfaces.
func (p Port) ListenAddress() string {
	return net.JoinHostPort("", p.String())
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// LookupFunc looks up the value of an environment variable. It has the same
// signature as [os.LookupEnv].
type LookupFunc func(key string) (string, bool)

// FromEnvironment resolves the port from the process environment.
func FromEnvironment() (Port, error) {
	return Resolve(os.LookupEnv)
}

// Resolve returns the port to listen on.
//
// If [EnvVar] is set it must be a base-10 signed 32-bit integer, otherwise an
// [InvalidConfigurationError] is returned. If it is not set, [Default] is used.
func Resolve(lookup LookupFunc) (Port, error) {
	value, ok := lookup(EnvVar)
	if !ok {
		return Default, nil
	}

	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &InvalidConfigurationError{
			Value: value,
			Cause: err,
		}
	}

	return Port(n), nil
}

// InvalidConfigurationError is returned when [EnvVar] is set to a value that
// is not an integer.
type InvalidConfigurationError struct {
	Value string
	Cause error
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid port configuration: %s is %q, expected an integer",
		EnvVar,
		e.Value,
	)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Cause
}
