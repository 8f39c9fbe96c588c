// Package clipboard writes text to the system clipboard through the
// wl-copy (Wayland) or xclip (X11) helper binaries.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// Copy places text on the system clipboard. wl-copy is tried first, then
// xclip. An error is returned when neither helper succeeds.
func Copy(text string) error {
	if text == "" {
		return fmt.Errorf("clipboard: nothing to copy")
	}

	if err := run(text, "wl-copy"); err == nil {
		return nil
	}
	if err := run(text, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}
	return fmt.Errorf("clipboard: neither wl-copy nor xclip available")
}

// IsAvailable reports whether a clipboard helper is present on the system.
func IsAvailable() bool {
	if _, err := exec.LookPath("wl-copy"); err == nil {
		return true
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return true
	}
	return false
}

func run(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %s failed: %w", name, err)
	}
	return nil
}
