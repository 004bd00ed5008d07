// cmd/octave/write.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/catalog"
	"github.com/tamzrod/octave-reader/internal/format"
	"github.com/tamzrod/octave-reader/internal/status"
)

func newWriteCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "write <quantity> [value]",
		Short: "Write a configuration register (clock, resolution, reset)",
		Example: `  octave write --port /dev/ttyUSB0 WriteHours 14
  octave write --port /dev/ttyUSB0 WriteFlowResIndex 4
  octave write --port /dev/ttyUSB0 SystemReset`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := catalog.Lookup(args[0])
			if !ok || fn.ID.IsRead() {
				return fmt.Errorf("%q is not a writable quantity", args[0])
			}

			var value uint8
			switch {
			case len(args) == 2:
				v, err := strconv.ParseUint(args[1], 0, 8)
				if err != nil {
					return fmt.Errorf("value %q: must be 0-255: %w", args[1], err)
				}
				value = uint8(v)
			case fn != catalog.SystemReset:
				return fmt.Errorf("%s needs a value", fn.Name)
			}

			if (fn == catalog.WriteVolumeResIndex || fn == catalog.WriteFlowResIndex) && value > catalog.MaxResolutionIndex {
				code := status.InvalidResolutionIndex
				fmt.Fprintln(cmd.OutOrStdout(), format.Result(fn, nil, code))
				return code.Err()
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

			code, err := sess.Meter.Write(cmd.Context(), fn.Name, value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Result(fn, nil, code))
			return code.Err()
		},
	}
}
