package vcap

import (
	"errors"
	"fmt"
)

// Static errors returned by catalog decoding.
var (
	// ErrEnvNotSet is returned when the VCAP_SERVICES environment
	// variable is absent.
	ErrEnvNotSet = fmt.Errorf("environment variable %q is not set", VCAPServices)

	// ErrMalformedJSON is returned when the variable is present but its
	// value does not decode into the catalog shape.
	ErrMalformedJSON = fmt.Errorf("environment variable %q is malformed", VCAPServices)
)

// ServiceNotFoundError reports a lookup for a service-type name that has
// no entry in the catalog.
type ServiceNotFoundError struct {
	Service string
}

// Error implements the error interface.
func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service %q is not bounded to the application", e.Service)
}

// IsServiceNotFound checks if the error is a ServiceNotFoundError.
func IsServiceNotFound(err error) bool {
	target := &ServiceNotFoundError{}

	return errors.As(err, &target)
}
