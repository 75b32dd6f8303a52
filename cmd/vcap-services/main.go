package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/vcap-services/cmd/vcap-services/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "vcap-services",
	Short: "Inspect Cloud Foundry service bindings",
	Long: `A command-line interface for inspecting the VCAP_SERVICES environment
variable published to a Cloud Foundry application.

Run it inside an application container (for example via "cf ssh") to see
which services are bound to the application and what credentials each
binding carries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	// Read in environment variables that match
	viper.SetEnvPrefix("VCAP_CLI")
	viper.AutomaticEnv()

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewServicesCommand())
	rootCmd.AddCommand(commands.NewCredentialsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
