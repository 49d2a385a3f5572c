package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nsbin/pkg/nsbin"
)

var (
	applyFlags  siteFlags
	applyBackup bool
	applyFlush  string
)

func init() {
	cmd := newApplyCmd()
	applyFlags.register(cmd.Flags())
	cmd.Flags().BoolVar(&applyBackup, "backup", false, "Copy the module to <module>.bak before writing")
	cmd.Flags().StringVar(&applyFlush, "flush", "", "Sync after writing: auto, full or none")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <module> <namespace>",
		Short: "Write a namespace into a module",
		Long: `The apply command writes a namespace into the reserved buffer of a module
and records the patch in <module>.ddNSi. Invalid names are replaced by
System.Runtime.InteropServices.

Example:
  nsbin apply DllExport.dll My.Company.Interop
  nsbin apply DllExport.dll My.Company.Interop --backup
  nsbin apply DllExport.dll My.Company.Interop --layout inplace --size-field hex
  nsbin apply DllExport.dll Wide.Name --encoding utf-16le --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("backup") {
				cfg.Backup = applyBackup
			}
			if applyFlush != "" {
				cfg.Flush = applyFlush
			}
			return runApply(args)
		},
	}
	return cmd
}

// applyResult is the JSON form of a patch report.
type applyResult struct {
	*nsbin.PatchReport
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

func runApply(args []string) error {
	target := args[0]
	name := args[1]

	enc, opts, err := applyFlags.resolve()
	if err != nil {
		return failJSON(err)
	}
	opts.Logger = commandLogger("apply")

	printVerbose("Patching %s (layout %s, size field %s)\n", target, opts.Layout, opts.SizeField)

	rep, err := nsbin.ApplyNamespace(target, name, enc, opts)
	if rep == nil {
		return failJSON(fmt.Errorf("failed to apply namespace: %w", err))
	}

	if jsonOut {
		res := applyResult{PatchReport: rep, State: rep.State.String()}
		if err != nil {
			res.Error = err.Error()
		}
		if jerr := printJSON(res); jerr != nil {
			return jerr
		}
		return err
	}

	if rep.Substituted {
		printWarn("%q is not a valid namespace, using %s\n", rep.Requested, rep.Name)
	}

	if errors.Is(err, nsbin.ErrMarkerWrite) {
		printInfo("%s %s\n", warnColor.Sprint("Patched without marker:"), target)
	} else {
		printInfo("%s %s\n", okColor.Sprint("Patched"), target)
	}
	printField("namespace", rep.Name)
	printField("offset", fmt.Sprintf("0x%X", rep.Offset))
	printField("buffer", fmt.Sprintf("0x%04X (%d bytes)", rep.Buffer, rep.Buffer))
	printField("span", fmt.Sprintf("%d bytes", rep.Span))
	printField("encoding", rep.Encoding)
	printField("layout", rep.Layout)
	if err == nil {
		printField("marker", rep.MarkerPath)
	}
	if rep.BackupPath != "" {
		printField("backup", rep.BackupPath)
	}
	return err
}
