package main

import (
	"fmt"

	"github.com/phrazzld/ask-relay/internal/config"
	"github.com/spf13/pflag"
)

// loadAppConfig parses the server's command-line flags and loads the
// configuration from flags, environment and an optional config file.
func loadAppConfig(args []string) (*config.Config, error) {
	fs := pflag.NewFlagSet("ask-relay", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg, err := config.Load(config.LoadOptions{Flags: fs})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
