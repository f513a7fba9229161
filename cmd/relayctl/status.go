package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/phrazzld/ask-relay/internal/api"
	"github.com/spf13/cobra"
)

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the relay is running and which endpoints it serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.newClient()
			defer func() { _ = client.Close() }()

			status, err := client.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("status request to %s failed: %w", opts.url, err)
			}
			return printStatus(cmd.OutOrStdout(), opts.url, status)
		},
	}
}

func printStatus(w io.Writer, url string, status *api.StatusResponse) error {
	bold := color.New(color.Bold)
	state := color.New(color.FgRed)
	if status.Status == "online" {
		state = color.New(color.FgGreen)
	}

	if _, err := bold.Fprintf(w, "%s ", url); err != nil {
		return err
	}
	if _, err := state.Fprintln(w, status.Status); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, status.Message); err != nil {
		return err
	}

	paths := make([]string, 0, len(status.Endpoints))
	for path := range status.Endpoints {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "  %s\t%s\n", path, status.Endpoints[path]); err != nil {
			return err
		}
	}
	return nil
}
