package editor

import (
	"os/exec"
	"runtime"
)

// ExternalOpener opens a navigation target outside the editor, typically
// in the system browser. Implementations are fire-and-forget: the opener
// is never awaited and failures are not reported back through resolution.
type ExternalOpener interface {
	OpenExternal(target string)
}

// ExternalOpenerFunc adapts a function to ExternalOpener.
type ExternalOpenerFunc func(target string)

// OpenExternal calls the wrapped function.
func (f ExternalOpenerFunc) OpenExternal(target string) {
	f(target)
}

// DefaultExternalOpener returns an opener that launches the platform
// browser in the background. Headless hosts should supply their own.
func DefaultExternalOpener() ExternalOpener {
	return ExternalOpenerFunc(func(target string) {
		go func() {
			var cmd *exec.Cmd
			switch runtime.GOOS {
			case "darwin":
				cmd = exec.Command("open", target)
			case "windows":
				cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
			default:
				cmd = exec.Command("xdg-open", target)
			}
			_ = cmd.Start()
		}()
	})
}

// NopExternalOpener discards external opens. Useful in tests and
// non-interactive hosts.
func NopExternalOpener() ExternalOpener {
	return ExternalOpenerFunc(func(string) {})
}
