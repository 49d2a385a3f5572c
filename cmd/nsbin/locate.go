package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nsbin/pkg/nsbin"
)

var locateFlags siteFlags

func init() {
	cmd := newLocateCmd()
	locateFlags.register(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <module>",
		Short: "Show the patch site of a module without changing it",
		Long: `The locate command finds the namespace identifier in the first 64 KiB of a
module and validates the reserved buffer after it. Nothing is written.

Example:
  nsbin locate DllExport.dll
  nsbin locate DllExport.dll --size-field hex --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(args)
		},
	}
}

func runLocate(args []string) error {
	target := args[0]

	enc, opts, err := locateFlags.resolve()
	if err != nil {
		return failJSON(err)
	}
	opts.Logger = commandLogger("locate")

	site, err := nsbin.Locate(target, enc, opts)
	if err != nil {
		return failJSON(fmt.Errorf("failed to locate patch site: %w", err))
	}

	if jsonOut {
		return printJSON(site)
	}

	printInfo("%s %s\n", okColor.Sprint("Patch site in"), target)
	printField("offset", fmt.Sprintf("0x%X", site.Offset))
	printField("identifier", fmt.Sprintf("%d bytes", site.IdentLen))
	printField("buffer", fmt.Sprintf("0x%04X (%d bytes)", site.Buffer, site.Buffer))
	printField("span", fmt.Sprintf("%d bytes", site.Span))
	printField("capacity", fmt.Sprintf("%d bytes (%s layout)", site.Capacity, site.Layout))
	printField("encoding", site.Encoding)
	printField("size field", site.SizeField)
	return nil
}
