package prism

import (
	"log/slog"
	"runtime"
)

type releaser interface{ Release() }

// finalized installs a finalizer that releases the handle once the
// garbage collector drops it. Holders are still expected to call
// Release themselves, the finalizer only catches leaks.
func finalized[T releaser](label string, handle T) T {
	// wasm handles are managed by the js garbage collector already
	if runtime.GOOS != "js" {
		runtime.SetFinalizer(handle, func(h T) {
			slog.Debug("Releasing leaked handle", slog.String("handle", label))
			h.Release()
		})
	}

	return handle
}
