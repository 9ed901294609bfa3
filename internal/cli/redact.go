package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dshills/veil/internal/config"
	"github.com/dshills/veil/internal/dlp"
	"github.com/dshills/veil/internal/output"
	"github.com/dshills/veil/internal/profile"
	"github.com/dshills/veil/internal/service"
	"github.com/spf13/cobra"
)

// Redaction flags
var (
	flagString        string
	flagFile          string
	flagMinLikelihood string
	flagReplaceWith   string
	flagInfoTypes     []string
	flagOut           string
	flagProfile       string
	flagEndpoint      string
	flagVerbose       bool
)

func addRedactFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagString, "string", "s", "", "Redact a literal string")
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Redact the image file at this path")
	cmd.Flags().StringVar(&flagMinLikelihood, "min-likelihood", "", "Minimum match likelihood (LIKELIHOOD_UNSPECIFIED, VERY_UNLIKELY, UNLIKELY, POSSIBLE, LIKELY, VERY_LIKELY)")
	cmd.Flags().StringVarP(&flagReplaceWith, "replace-with", "r", "", `Replacement for detected spans (default "_REDACTED_")`)
	cmd.Flags().StringSliceVar(&flagInfoTypes, "info-types", nil, "Info type names to detect (comma-separated or repeated)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path (required with --file)")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "Redaction profile file (YAML)")
	cmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Service endpoint URL")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagEndpoint != "" {
		m["endpoint"] = flagEndpoint
	}
	if flagVerbose {
		m["verbose"] = "true"
	}
	return m
}

// buildOptions resolves the effective redaction options: explicit flags win
// over profile values, profile values win over built-in defaults.
func buildOptions(prof *profile.Profile) (dlp.Options, error) {
	opts := dlp.Options{ReplaceWith: dlp.DefaultReplacement}
	likelihood := ""

	if prof != nil {
		if len(prof.InfoTypes) > 0 {
			opts.InfoTypes = prof.InfoTypes
		}
		if prof.MinLikelihood != "" {
			likelihood = prof.MinLikelihood
		}
		if prof.ReplaceWith != "" {
			opts.ReplaceWith = prof.ReplaceWith
		}
	}

	if len(flagInfoTypes) > 0 {
		opts.InfoTypes = flagInfoTypes
	}
	if flagMinLikelihood != "" {
		likelihood = flagMinLikelihood
	}
	if flagReplaceWith != "" {
		opts.ReplaceWith = flagReplaceWith
	}

	if likelihood != "" {
		l, err := dlp.ParseLikelihood(likelihood)
		if err != nil {
			return dlp.Options{}, err
		}
		opts.MinLikelihood = l
	}

	return opts, nil
}

func runRedact(cmd *cobra.Command, args []string) error {
	// Mode selection is presence-based so that both-set is caught even when
	// one value is empty.
	stringMode := cmd.Flags().Changed("string")
	fileMode := cmd.Flags().Changed("file")

	if stringMode && fileMode {
		return fmt.Errorf("--string and --file are mutually exclusive")
	}
	if !stringMode && !fileMode {
		return fmt.Errorf("exactly one of --string or --file is required")
	}
	if fileMode && flagOut == "" {
		return fmt.Errorf("--out is required when redacting a file")
	}

	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	prof, err := profile.Load(flagProfile)
	if err != nil {
		return err
	}

	opts, err := buildOptions(prof)
	if err != nil {
		return err
	}

	client := service.New(cfg.Endpoint, cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer client.Close()

	ctx := context.Background()

	if stringMode {
		redactString(ctx, client, flagString, opts)
		return nil
	}
	redactFile(ctx, client, flagFile, flagOut, opts)
	return nil
}

func redactString(ctx context.Context, client service.Redactor, text string, opts dlp.Options) {
	req := dlp.BuildTextRequest(text, opts)

	resp, err := client.RedactContent(ctx, req)
	if err != nil {
		if service.IsAuthError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteText(os.Stdout, resp.Items); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
}

func redactFile(ctx context.Context, client service.Redactor, path, outPath string, opts dlp.Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	req := dlp.BuildImageRequest(dlp.SniffType(path, data), data, opts)

	resp, err := client.RedactContent(ctx, req)
	if err != nil {
		if service.IsAuthError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteImage(outPath, resp.Items); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
}

func init() {
	addRedactFlags(rootCmd)
}
