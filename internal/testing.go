// Package internal holds test-support code shared by packages that
// shell out to a real zsh binary, kept out of the public API surface.
package internal

import (
	"os"
	"os/exec"
	"strings"
)

// TestMainSetup prepares a reasonably clean, consistent environment
// for tests that spawn a real zsh process (scanner's pty-based
// cross-check, grounded on the teacher's interp integration tests).
func TestMainSetup() {
	out, _ := exec.Command("locale", "-a").Output()
	if strings.Contains(strings.ToLower(string(out)), "c.utf") {
		os.Setenv("LANGUAGE", "C.UTF-8")
		os.Setenv("LC_ALL", "C.UTF-8")
	} else {
		os.Setenv("LANGUAGE", "en_US.UTF-8")
		os.Setenv("LC_ALL", "en_US.UTF-8")
	}
	// zsh prints the pwd after changing directories when CDPATH is set.
	os.Unsetenv("CDPATH")
}
