// Command relayctl talks to a running relay from a terminal: it checks the
// relay's status and asks questions the same way a device would.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/ask-relay/internal/relayclient"
	"github.com/spf13/cobra"
)

// urlEnv overrides the default relay URL.
const urlEnv = "RELAY_URL"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	url     string
	timeout time.Duration
	retries uint
	debug   bool
}

func (o *rootOptions) newClient() *relayclient.Client {
	return relayclient.New(relayclient.Config{
		BaseURL: o.url,
		Timeout: o.timeout,
		Retries: o.retries,
	})
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "relayctl: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	defaultURL := os.Getenv(urlEnv)
	if defaultURL == "" {
		defaultURL = relayclient.DefaultBaseURL
	}

	rootCommand := &cobra.Command{
		Use:           "relayctl",
		Short:         "Query a running Gemini relay",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.debug)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&opts.url, "url", defaultURL, "relay base URL (env "+urlEnv+")")
	rootCommand.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "timeout for each HTTP attempt")
	rootCommand.PersistentFlags().UintVar(&opts.retries, "retries", 0, "extra attempts when the relay cannot be reached")
	rootCommand.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCommand.AddCommand(
		newStatusCommand(opts),
		newAskCommand(opts),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelWarn
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}
