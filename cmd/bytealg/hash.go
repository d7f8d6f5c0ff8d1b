package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/coregx/bytealg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <file>...",
		Short: "Print the wyhash digest of files",
		Long: `Hash reads each file and prints its 64-bit wyhash digest in hex, one line
per file in the style of sha256sum. The digest is seeded; the same file
hashed with a different --seed yields an unrelated value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHash,
	}
	hashFlags(cmd.Flags())
	return cmd
}

func hashFlags(fs *pflag.FlagSet) {
	fs.Uint64("seed", 0, "seed for the hash")
}

func runHash(cmd *cobra.Command, args []string) error {
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return err
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		slog.Debug("hashing", "file", name, "bytes", len(data), "seed", seed)
		fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", bytealg.Hash(seed, data), name)
	}
	return nil
}
