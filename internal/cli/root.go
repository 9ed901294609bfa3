package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes, stable for scripting.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Redact sensitive data through a remote DLP service",
	Long: "Veil sends text or image content to a remote data-loss-prevention service\n" +
		"and writes back a redacted copy, replacing or masking everything the service\n" +
		"detects. All detection happens remotely; veil only builds the request and\n" +
		"delivers the result.",
	RunE: runRedact,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(infoTypesCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print veil version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "veil version %s\n", version)
	},
}
