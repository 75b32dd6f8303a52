package vcap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/vcap-services/pkg/vcap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, vcap.ErrEnvNotSet, `environment variable "VCAP_SERVICES" is not set`)
	assert.EqualError(t, vcap.ErrMalformedJSON, `environment variable "VCAP_SERVICES" is malformed`)

	notFound := &vcap.ServiceNotFoundError{Service: "p.mysql"}
	assert.EqualError(t, notFound, `service "p.mysql" is not bounded to the application`)
}

func TestIsServiceNotFound(t *testing.T) {
	t.Parallel()

	notFound := &vcap.ServiceNotFoundError{Service: "p.mysql"}
	assert.True(t, vcap.IsServiceNotFound(notFound))

	wrapped := fmt.Errorf("resolving binding: %w", notFound)
	assert.True(t, vcap.IsServiceNotFound(wrapped))

	assert.False(t, vcap.IsServiceNotFound(nil))
	assert.False(t, vcap.IsServiceNotFound(vcap.ErrEnvNotSet))
	assert.False(t, vcap.IsServiceNotFound(errors.New("some error")))
}

func TestServiceNotFoundError_CarriesName(t *testing.T) {
	t.Parallel()

	_, err := vcap.LookupCredentials(vcap.ServiceCatalog{}, "serviceB")
	require.Error(t, err)

	notFound := &vcap.ServiceNotFoundError{}
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "serviceB", notFound.Service)
}

func TestErrorKindsDoNotOverlap(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, vcap.ErrEnvNotSet, vcap.ErrMalformedJSON)
	assert.NotErrorIs(t, vcap.ErrMalformedJSON, vcap.ErrEnvNotSet)
	assert.False(t, vcap.IsServiceNotFound(vcap.ErrMalformedJSON))
}
