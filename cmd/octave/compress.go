// cmd/octave/compress.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/format"
	"github.com/tamzrod/octave-reader/internal/status"
)

func newCompressCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "compress <value>",
		Short: "Scale a decimal value to a 16- or 32-bit fixed-point integer",
		Example: `  octave compress 12.34
  octave compress --bits 32 -- -21474836.48`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}

			var (
				raw  int64
				back float64
				code status.Code
			)
			switch bits {
			case 16:
				var c int16
				c, code = codec.CompressTo16Bits(v)
				raw, back = int64(c), codec.Expand16(c)
			case 32:
				var c int32
				c, code = codec.CompressTo32Bits(v)
				raw, back = int64(c), codec.Expand32(c)
			default:
				return fmt.Errorf("--bits must be 16 or 32, got %d", bits)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d (%s)\n", raw, strconv.FormatFloat(back, 'f', 2, 64))
			if code != status.Success {
				fmt.Fprintln(out, format.Error(code))
			}
			return code.Err()
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 16, "Target width: 16 or 32")
	return cmd
}
