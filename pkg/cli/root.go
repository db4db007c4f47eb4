// Package cli provides the stubd CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stubd",
	Short: "Schema-driven HTTP response stubbing server",
	Long: `stubd simulates a remote API during tests.

Given an OpenAPI document whose schemas are tagged with x-resourceId and a
fixture library of canned payloads, stubd validates incoming requests
against the spec, synthesizes responses from the fixtures, and serves them
over HTTP. Tests point their API client at the stubd base URL instead of
the real service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the given version string.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}
