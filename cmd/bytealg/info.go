package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/coregx/bytealg"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected kernel level and CPU features",
		Long: `Info reports which kernel level the dispatcher bound at startup, the host
platform, and the CPU feature flags the dispatcher inspects to make that
choice. Set BYTEALG_NO_SIMD=1 to force the scalar kernels.`,
		Args: cobra.NoArgs,
		RunE: runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "level:\t%s\n", bytealg.SIMDLevel())
	fmt.Fprintf(tw, "goos:\t%s\n", runtime.GOOS)
	fmt.Fprintf(tw, "goarch:\t%s\n", runtime.GOARCH)

	env := "(unset)"
	if v, ok := os.LookupEnv("BYTEALG_NO_SIMD"); ok {
		env = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(tw, "BYTEALG_NO_SIMD:\t%s\n", env)

	for _, f := range cpuFeatures() {
		fmt.Fprintf(tw, "cpu.%s:\t%v\n", f.name, f.have)
	}

	return tw.Flush()
}

type feature struct {
	name string
	have bool
}

// cpuFeatures lists the flags the dispatcher consults on this
// architecture. SSE2 is part of the amd64 baseline, so it is always
// reported as present there.
func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64":
		return []feature{
			{"sse2", true},
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	default:
		return nil
	}
}
