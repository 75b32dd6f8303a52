package commands

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/vcap-services/pkg/vcap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// NewServicesCommand creates the services command
func NewServicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "services",
		Aliases: []string{"s"},
		Short:   "List bound services",
		Long:    "List the service types and bindings present in VCAP_SERVICES",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := vcap.DecodeCatalog()
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(catalog)
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(catalog)
			default:
				if len(catalog) == 0 {
					_, _ = os.Stdout.WriteString("No services bound\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Service", "Bindings", "Names", "Labels")

				for _, name := range catalog.Names() {
					bindings := catalog[name]
					_ = table.Append(name, strconv.Itoa(len(bindings)),
						strings.Join(bindingNames(bindings), ", "),
						strings.Join(bindingLabels(bindings), ", "))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

// bindingNames collects the given names of the bindings, in catalog order.
func bindingNames(bindings []vcap.ServiceBinding) []string {
	names := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		names = append(names, binding.Name)
	}

	return names
}

// bindingLabels collects the distinct service offering labels of the
// bindings, in catalog order.
func bindingLabels(bindings []vcap.ServiceBinding) []string {
	seen := make(map[string]bool, len(bindings))
	labels := make([]string, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Label == "" || seen[binding.Label] {
			continue
		}

		seen[binding.Label] = true
		labels = append(labels, binding.Label)
	}

	return labels
}
