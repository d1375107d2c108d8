package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate random passwords and score password strength",
		Long: `pwgen generates random passwords from configurable character classes
and scores passwords against a fixed strength rubric.

Examples:
  pwgen generate                          # one 16 character password
  pwgen generate -l 24 -x -n 5            # five 24 character passwords without similar glyphs
  pwgen generate --no-symbols -s          # letters and digits, with strength
  pwgen evaluate 'Tr0ub4dor&3'            # score a password
  echo 'hunter2' | pwgen evaluate --json  # score from stdin as JSON`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(), newEvaluateCmd(), newTokenCmd())
	return root
}
