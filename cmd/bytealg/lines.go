package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/coregx/bytealg"
	"github.com/coregx/bytealg/internal/conv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines <file>",
		Short: "Count lines in a file",
		Long: `Lines counts the newline bytes in a file using the dispatched scanning
kernel, matching the output of wc -l. With --line N it instead prints the
byte offset of the first byte of line N (line indexes start at zero).`,
		Args: cobra.ExactArgs(1),
		RunE: runLines,
	}
	linesFlags(cmd.Flags())
	return cmd
}

func linesFlags(fs *pflag.FlagSet) {
	fs.Int("line", 0, "print the byte offset of this line index instead of counting")
}

func runLines(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	slog.Debug("scanning", "file", args[0], "bytes", len(data))

	if cmd.Flags().Changed("line") {
		n, err := cmd.Flags().GetInt("line")
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("line index must be non-negative, got %d", n)
		}
		target := conv.IntToInt32(n)
		offset, line := bytealg.LinesForward(data, 0, 0, target)
		if line < target {
			return fmt.Errorf("%s: line %d out of range (file has %d lines)", args[0], n, line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), offset)
		return nil
	}

	_, count := bytealg.LinesForward(data, 0, 0, math.MaxInt32)
	fmt.Fprintln(cmd.OutOrStdout(), count)
	return nil
}
