package main

import (
	"fmt"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"github.com/coregx/bytealg"
	"github.com/coregx/bytealg/internal/conv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sinks keep the measured calls observable so the loops are not
// optimized away.
var (
	benchOffset int
	benchLine   int32
)

func newBenchCmd() *cobra.Command {
	viper.SetDefault("bench.sizes", []int{4096, 65536, 1 << 20})
	viper.SetDefault("bench.min_bytes", uint64(1<<26))

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure line and fill kernel throughput",
		Long: `Bench runs the dispatched line-counting and fill kernels over buffers of
the configured sizes and reports throughput. Each size is processed until
at least --min-bytes bytes have passed through the kernel, so small sizes
get enough repetitions for a stable figure.

Defaults for both knobs can also be set in the config file under
bench.sizes and bench.min_bytes.`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}
	benchFlags(cmd.Flags())
	return cmd
}

func benchFlags(fs *pflag.FlagSet) {
	fs.IntSlice("sizes", []int{4096, 65536, 1 << 20}, "buffer sizes in bytes")
	fs.Uint64("min-bytes", 1<<26, "minimum bytes to process per size")
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := viper.GetIntSlice("bench.sizes")
	if cmd.Flags().Changed("sizes") {
		var err error
		sizes, err = cmd.Flags().GetIntSlice("sizes")
		if err != nil {
			return err
		}
	}

	minBytesRaw := viper.GetUint64("bench.min_bytes")
	if cmd.Flags().Changed("min-bytes") {
		var err error
		minBytesRaw, err = cmd.Flags().GetUint64("min-bytes")
		if err != nil {
			return err
		}
	}
	minBytes := conv.Uint64ToInt(minBytesRaw)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "op\tsize\treps\tMB/s")

	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("invalid size %d: sizes must be positive", size)
		}
		reps := minBytes/size + 1
		slog.Debug("bench case", "size", size, "reps", reps)

		text := benchText(size)
		start := time.Now()
		for i := 0; i < reps; i++ {
			benchOffset, benchLine = bytealg.LinesForward(text, 0, 0, math.MaxInt32)
		}
		fmt.Fprintf(tw, "lines\t%d\t%d\t%.0f\n", size, reps, throughput(size, reps, time.Since(start)))

		if elems := size / 4; elems > 0 {
			buf := make([]uint32, elems)
			start = time.Now()
			for i := 0; i < reps; i++ {
				bytealg.Fill(buf, 0x20)
			}
			elapsed := time.Since(start)
			benchOffset += int(buf[0])
			fmt.Fprintf(tw, "fill\t%d\t%d\t%.0f\n", elems*4, reps, throughput(elems*4, reps, elapsed))
		}
	}

	return tw.Flush()
}

// benchText builds a buffer with a newline every 40 bytes, a line length
// typical of source text.
func benchText(size int) []byte {
	text := make([]byte, size)
	for i := range text {
		text[i] = 'a'
		if i%40 == 39 {
			text[i] = '\n'
		}
	}
	return text
}

func throughput(size, reps int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(size) * float64(reps) / elapsed.Seconds() / 1e6
}
