// cmd/octave/list.go
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/catalog"
)

func newListCmd() *cobra.Command {
	var params bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the meter memory map",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := listFunctions(out); err != nil {
				return err
			}
			if params {
				return listParams(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&params, "params", false, "Also list unit, resolution and alarm codes")
	return cmd
}

func listFunctions(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tACCESS\tREGISTERS\tTYPE")
	for _, fn := range catalog.Functions() {
		access, regs := "write", 1
		if fn.ID.IsRead() {
			access = "read"
			regs = fn.Width.Registers(int(fn.Count))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", fn.Name, fn.ID, access, regs, fn.Width)
	}
	return tw.Flush()
}

func listParams(out io.Writer) error {
	tables := []struct {
		title string
		t     *catalog.Table[uint8]
	}{
		{"Volume units", catalog.VolumeUnits},
		{"Flow units", catalog.FlowUnits},
		{"Temperature units", catalog.TemperatureUnits},
		{"Flow directions", catalog.FlowDirections},
		{"Resolutions", catalog.Resolutions},
		{"Alarm bits", catalog.Alarms},
	}

	for _, tb := range tables {
		fmt.Fprintf(out, "\n%s:\n", tb.title)
		for _, e := range tb.t.Entries() {
			fmt.Fprintf(out, "  %2d  %s\n", e.Code, e.Name)
		}
	}
	return nil
}
