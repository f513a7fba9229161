package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/phrazzld/ask-relay/internal/api"
	"github.com/phrazzld/ask-relay/internal/relayclient"
	"github.com/spf13/cobra"
)

func newAskCommand(opts *rootOptions) *cobra.Command {
	var rawJSON bool

	command := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Send a question to the relay and print the answer",
		Long: "Send a question to the relay and print the answer.\n" +
			"All arguments are joined with spaces into one question.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			client := opts.newClient()
			defer func() { _ = client.Close() }()

			resp, err := client.Ask(cmd.Context(), question)
			if err != nil {
				var apiErr *relayclient.APIError
				if errors.As(err, &apiErr) {
					_, _ = color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error (%d): %s\n", apiErr.StatusCode, apiErr.Message)
				}
				return fmt.Errorf("ask request to %s failed: %w", opts.url, err)
			}

			if rawJSON {
				return printAskJSON(cmd.OutOrStdout(), resp)
			}
			return printAnswer(cmd.OutOrStdout(), question, resp)
		},
	}
	command.Flags().BoolVar(&rawJSON, "json", false, "print the relay's JSON response")

	return command
}

func printAnswer(w io.Writer, question string, resp *api.AskResponse) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprint(w, "Q: "); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, question); err != nil {
		return err
	}
	if _, err := bold.Fprint(w, "A: "); err != nil {
		return err
	}
	_, err := color.New(color.FgGreen).Fprintln(w, resp.Answer)
	return err
}

func printAskJSON(w io.Writer, resp *api.AskResponse) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
