package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nsbin/pkg/nsbin"
)

var errModified = errors.New("patched span no longer matches its marker")

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <module>",
		Short: "Show the marker of a patched module and verify the patch",
		Long: `The inspect command reads <module>.ddNSi, prints the recorded patch and
checks that the patched bytes still hash to the recorded digest.

Example:
  nsbin inspect DllExport.dll
  nsbin inspect DllExport.dll --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

func runInspect(args []string) error {
	target := args[0]

	v, err := nsbin.Verify(target, commandLogger("inspect"))
	if err != nil {
		return failJSON(fmt.Errorf("failed to inspect %s: %w", target, err))
	}
	rec := v.Record

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"target":     target,
			"version":    rec.Version,
			"offset":     rec.Offset,
			"buffer":     rec.Buffer,
			"name":       rec.Name,
			"found_name": v.Name,
			"encoding":   rec.Encoding,
			"layout":     rec.Layout,
			"size_field": rec.SizeField,
			"span":       rec.Span,
			"digest":     rec.DigestHex(),
			"intact":     v.Intact,
			"reason":     v.Reason,
		}); err != nil {
			return err
		}
	} else {
		printInfo("Marker for %s\n", target)
		printField("namespace", rec.Name)
		printField("in module", v.Name)
		printField("offset", fmt.Sprintf("0x%X", rec.Offset))
		printField("buffer", fmt.Sprintf("0x%04X (%d bytes)", rec.Buffer, rec.Buffer))
		printField("span", fmt.Sprintf("%d bytes", rec.Span))
		printField("encoding", rec.Encoding)
		printField("layout", rec.Layout)
		printField("size field", rec.SizeField)
		printField("digest", rec.DigestHex())
		printVerbose("  record version %d\n", rec.Version)
		if v.Intact {
			printField("status", okColor.Sprint("intact"))
		} else {
			printField("status", errColor.Sprint("modified")+" ("+v.Reason+")")
		}
	}

	if !v.Intact {
		return errModified
	}
	return nil
}
