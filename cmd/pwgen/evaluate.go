package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passkit/internal/metrics"
	"github.com/vaultpass/passkit/internal/model"
	"github.com/vaultpass/passkit/internal/service"
	"github.com/vaultpass/passkit/internal/strength"
)

func newEvaluateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evaluate [password]",
		Short: "Score the strength of a password",
		Long: `Score a password against the strength rubric.

The password is read from the first line of stdin when no argument is given,
which keeps it out of shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			resp, err := service.NewStrengthService(metrics.New()).Evaluate(model.EvaluateRequest{Password: password})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			printReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func passwordArg(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printReport(w io.Writer, resp model.EvaluateResponse) {
	fmt.Fprintf(w, "Strength: %s (%d/%d)\n", resp.Label, resp.Score, strength.MaxScore)
	if resp.Estimate != nil {
		fmt.Fprintf(w, "Estimated crack time: %s (%.1f bits)\n", resp.Estimate.CrackTime, resp.Estimate.EntropyBits)
	}
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
