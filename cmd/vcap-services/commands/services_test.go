package commands

import (
	"testing"

	"github.com/fivetwenty-io/vcap-services/pkg/vcap"
	"github.com/stretchr/testify/assert"
)

func TestNewServicesCommand(t *testing.T) {
	cmd := NewServicesCommand()
	assert.Equal(t, "services", cmd.Use)
	assert.Equal(t, []string{"s"}, cmd.Aliases)
	assert.Equal(t, "List bound services", cmd.Short)
	assert.Equal(t, "List the service types and bindings present in VCAP_SERVICES", cmd.Long)
	assert.NotNil(t, cmd.RunE)
}

func TestServicesCommand_EnvNotSet(t *testing.T) {
	unsetVCAPServices(t)

	cmd := NewServicesCommand()
	err := cmd.RunE(cmd, nil)
	assert.ErrorIs(t, err, vcap.ErrEnvNotSet)
}

func TestBindingNames(t *testing.T) {
	bindings := []vcap.ServiceBinding{
		{Name: "orders-db"},
		{Name: "audit-db"},
	}

	assert.Equal(t, []string{"orders-db", "audit-db"}, bindingNames(bindings))
	assert.Empty(t, bindingNames(nil))
}

func TestBindingLabels(t *testing.T) {
	bindings := []vcap.ServiceBinding{
		{Name: "orders-db", Label: "p.mysql"},
		{Name: "audit-db", Label: "p.mysql"},
		{Name: "unnamed"},
	}

	assert.Equal(t, []string{"p.mysql"}, bindingLabels(bindings))
}
