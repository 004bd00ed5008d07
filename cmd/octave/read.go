// cmd/octave/read.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/format"
	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/status"
)

func newReadCmd(conn *connFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [quantity...]",
		Short: "Read quantities from the meter",
		Example: `  octave read --port /dev/ttyUSB0 ForwardVolume_64 FlowUnit
  octave read --endpoint 10.0.0.7:502 --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				names = readNames()
			}
			if len(names) == 0 {
				return fmt.Errorf("no quantity given (see 'octave list')")
			}
			for _, name := range names {
				fn, ok := catalog.Lookup(name)
				if !ok || !fn.ID.IsRead() {
					return fmt.Errorf("%q is not a readable quantity", name)
				}
			}

			cfg, err := conn.load(cmd)
			if err != nil {
				return err
			}
			sess, cleanup, err := InitSession(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return runRead(cmd.Context(), cmd, sess.Meter, names)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Read every quantity in the memory map")
	return cmd
}

// runRead prints one line per quantity and returns the first failing code.
func runRead(ctx context.Context, cmd *cobra.Command, m *meter.Meter, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	first := status.Success
	for _, name := range names {
		r, err := m.Read(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), format.Result(r.Function, r.Value, r.Code))
		if first == status.Success {
			first = r.Code
		}
	}
	return first.Err()
}

func readNames() []string {
	var out []string
	for _, fn := range catalog.Functions() {
		if fn.ID.IsRead() {
			out = append(out, fn.Name)
		}
	}
	return out
}
