package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/trace"
	"testing"

	"github.com/pkg/profile"
)

// ProfileTrace runs fn under b's timer, optionally capturing a pprof
// profile and a runtime execution trace under profiling/.
func ProfileTrace(b *testing.B, profiled, traced bool, fn func()) {
	if traced {
		path := fmt.Sprintf("profiling/%v-trace.out", b.Name())
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			panic(err)
		}
		f, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}

	if profiled {
		p := profile.Start(
			profile.ProfilePath(fmt.Sprintf("profiling/%v-pprof", b.Name())),
			profile.Quiet,
		)
		defer p.Stop()
	}

	b.StartTimer()
	defer b.StopTimer()

	fn()
}
