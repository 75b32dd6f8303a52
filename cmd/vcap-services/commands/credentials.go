package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fivetwenty-io/vcap-services/pkg/vcap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Masked replaces secret credential fields in output.
const Masked = "***"

// NewCredentialsCommand creates the credentials command
func NewCredentialsCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:     "credentials SERVICE_NAME",
		Aliases: []string{"creds"},
		Short:   "Show credentials for a bound service",
		Long:    "Display the credentials of every binding of the given service type",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceName := args[0]

			creds, err := vcap.GetCredentials(serviceName)
			if err != nil {
				return err
			}

			if !showSecrets {
				for i := range creds {
					creds[i] = maskSecrets(creds[i])
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(creds)
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(creds)
			default:
				if len(creds) == 0 {
					_, _ = fmt.Fprintf(os.Stdout, "Service '%s' has no bindings\n", serviceName)

					return nil
				}

				for i, cred := range creds {
					_, _ = fmt.Fprintf(os.Stdout, "Binding %d of %d:\n", i+1, len(creds))

					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Field", "Value")

					for _, row := range credentialRows(cred) {
						_ = table.Append(row[0], row[1])
					}

					_ = table.Render()
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print secret fields instead of masking them")

	return cmd
}

// maskSecrets replaces the secret-bearing fields of a credential record
// with the mask marker, leaving absent fields absent.
func maskSecrets(cred vcap.Credentials) vcap.Credentials {
	if cred.Password != "" {
		cred.Password = Masked
	}

	if cred.ClientSecret != "" {
		cred.ClientSecret = Masked
	}

	if cred.LicenseKey != "" {
		cred.LicenseKey = Masked
	}

	return cred
}

// credentialRows lists the populated fields of a credential record as
// field/value pairs, using the wire field names.
func credentialRows(cred vcap.Credentials) [][2]string {
	fields := []struct {
		name  string
		value string
	}{
		{"uri", cred.URI},
		{"jdbcUrl", cred.JDBCURL},
		{"http_api_uri", cred.APIURI},
		{"licenseKey", cred.LicenseKey},
		{"client_secret", cred.ClientSecret},
		{"client_id", cred.ClientID},
		{"access_token_uri", cred.AccessTokenURI},
		{"hostname", cred.Hostname},
		{"username", cred.Username},
		{"password", cred.Password},
		{"name", cred.Name},
	}

	rows := make([][2]string, 0, len(fields)+1)

	for _, field := range fields {
		if field.value == "" {
			continue
		}

		rows = append(rows, [2]string{field.name, field.value})
	}

	if cred.Port != 0 {
		rows = append(rows, [2]string{"port", strconv.Itoa(cred.Port)})
	}

	return rows
}
