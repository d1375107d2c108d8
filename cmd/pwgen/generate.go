package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passkit/internal/crypto"
	"github.com/vaultpass/passkit/internal/strength"
)

type generateOptions struct {
	length         int
	noUpper        bool
	noLower        bool
	noNumbers      bool
	noSymbols      bool
	excludeSimilar bool
	count          int
	seed           string
	showStrength   bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate one or more random passwords.

Every enabled character class is guaranteed to appear at least once.
--seed makes the output reproducible and must never be used for real credentials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", crypto.DefaultLength, "password length (4-128)")
	f.BoolVar(&opts.noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&opts.noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&opts.noNumbers, "no-numbers", false, "exclude digits")
	f.BoolVar(&opts.noSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVarP(&opts.excludeSimilar, "exclude-similar", "x", false, "exclude similar looking characters (i l 1 L o 0 O)")
	f.IntVarP(&opts.count, "count", "n", 1, "number of passwords to generate")
	f.StringVar(&opts.seed, "seed", "", "deterministic seed (testing only)")
	f.BoolVarP(&opts.showStrength, "show-strength", "s", false, "print the strength of each password")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	if opts.count < 1 {
		return errors.New("--count must be at least 1")
	}

	src := crypto.SystemSource()
	if opts.seed != "" {
		seeded, err := crypto.NewSeededSource([]byte(opts.seed))
		if err != nil {
			return err
		}
		slog.Warn("using a deterministic seed; output is not secret")
		src = seeded
	}

	cfg := crypto.GenerationConfig{
		Length:           opts.length,
		IncludeUppercase: !opts.noUpper,
		IncludeLowercase: !opts.noLower,
		IncludeNumbers:   !opts.noNumbers,
		IncludeSymbols:   !opts.noSymbols,
		ExcludeSimilar:   opts.excludeSimilar,
	}

	out := cmd.OutOrStdout()
	for i := 0; i < opts.count; i++ {
		password, err := crypto.Generate(src, cfg)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}

		if !opts.showStrength {
			fmt.Fprintln(out, password)
			continue
		}

		report := strength.Evaluate(password)
		fmt.Fprintf(out, "%s\t%s (%d/%d)\n", password, report.Level.Label(), report.Score, strength.MaxScore)
	}

	return nil
}
