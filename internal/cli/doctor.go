package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/dlp"
	"github.com/dshills/veil/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured endpoint is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Endpoint)

		client := service.New(cfg.Endpoint, cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = client.RedactContent(ctx, dlp.BuildTextRequest("ping", dlp.Options{}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if service.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is reachable and accepting requests\n", cfg.Endpoint)
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Service endpoint URL")
	doctorCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}
