// cmd/octave/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	conn := &connFlags{}

	rootCmd := &cobra.Command{
		Use:   "octave",
		Short: "Read and configure an Octave water meter over Modbus",
		Long: `octave talks to an Arad Octave ultrasonic water meter through its
Modbus memory map, over an RS-485 line (rtu) or a Modbus TCP gateway (tcp).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	conn.register(rootCmd)

	rootCmd.AddCommand(newReadCmd(conn))
	rootCmd.AddCommand(newWriteCmd(conn))
	rootCmd.AddCommand(newPollCmd(conn))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCompressCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "octave version %s (commit %s)\n", version, commit)
		},
	}
}
