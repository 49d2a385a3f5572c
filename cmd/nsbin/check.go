package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nsbin/namespace"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <namespace>",
		Short: "Check whether a namespace would be accepted",
		Long: `The check command validates a namespace name the same way apply does and
shows the name apply would write. It exits non-zero for names that would be
replaced by the default.

Example:
  nsbin check My.Company.Interop
  nsbin check 9Lives --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func runCheck(args []string) error {
	name := args[0]
	applied, substituted := namespace.Normalize(name)

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"name":    name,
			"valid":   !substituted,
			"applied": applied,
		}); err != nil {
			return err
		}
	} else if substituted {
		printInfo("%s %q, apply would write %s\n", warnColor.Sprint("Invalid:"), name, applied)
	} else {
		printInfo("%s %s\n", okColor.Sprint("Valid:"), name)
	}

	if substituted {
		return fmt.Errorf("invalid namespace %q", name)
	}
	return nil
}
