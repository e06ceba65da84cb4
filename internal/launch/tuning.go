package launch

import (
	"fmt"
	"math"
	"runtime"

	"github.com/pbnjay/memory"
)

// defaultJVMTuning returns the heap-size and G1GC flags prepended to
// every launch, sized off total system RAM when the caller didn't ask
// for extra JVM args that already set -Xmx.
func defaultJVMTuning(opts Options) []string {
	if hasXmx(opts.ExtraJVMArgs) {
		return nil
	}

	sysMemMiB := float64(memory.TotalMemory()) / 1024 / 1024
	maxRamMiB := int(math.Min(math.Max(1024, sysMemMiB/4), sysMemMiB*0.85))

	tuning := []string{
		fmt.Sprintf("-Xmx%dM", maxRamMiB),
		"-XX:+UnlockExperimentalVMOptions",
		"-XX:+UseG1GC",
		"-XX:G1NewSizePercent=20",
		"-XX:G1ReservePercent=20",
		"-XX:MaxGCPauseMillis=50",
		"-XX:G1HeapRegionSize=32M",
	}

	if runtime.GOOS == "darwin" {
		tuning = append([]string{"-XstartOnFirstThread"}, tuning...)
	}
	return tuning
}

func hasXmx(args []string) bool {
	for _, a := range args {
		if len(a) >= 4 && a[:4] == "-Xmx" {
			return true
		}
	}
	return false
}
