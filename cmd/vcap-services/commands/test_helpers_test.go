package commands

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/vcap-services/pkg/vcap"
	"github.com/stretchr/testify/require"
)

// unsetVCAPServices removes VCAP_SERVICES for the duration of a test.
// t.Setenv registers the restore; the variable is then removed so the
// command under test observes an unset environment.
func unsetVCAPServices(t *testing.T) {
	t.Helper()
	t.Setenv(vcap.VCAPServices, "")
	require.NoError(t, os.Unsetenv(vcap.VCAPServices))
}
