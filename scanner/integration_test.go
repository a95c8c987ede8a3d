//go:build !windows

package scanner

import (
	"bufio"
	"os/exec"
	"testing"

	"github.com/creack/pty"

	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/internal"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// zshPath finds a real zsh binary to cross-check scanner assumptions
// against, skipping the test entirely when none is installed (grounded
// on the teacher's interp/terminal_test.go, which runs real commands
// through a pty rather than mocking the terminal).
func zshPath(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("zsh")
	if err != nil {
		t.Skip("zsh not installed, skipping pty cross-check")
	}
	return path
}

// TestRealZshAcceptsScannedSnippets feeds a real zsh a handful of
// scripts this package's dispatcher is expected to tokenize, through a
// pty so zsh believes it has a real terminal (matters for job-control
// related parsing paths), and checks zsh itself considers each one
// syntactically valid.
func TestRealZshAcceptsScannedSnippets(t *testing.T) {
	internal.TestMainSetup()
	zsh := zshPath(t)

	snippets := []string{
		"echo $foo\n",
		"echo ${var##*.bak}\n",
		"echo ${path/old/new}\n",
		"[[ $x =~ ^a+$ ]]\n",
		"cat <<EOF\nhello $USER\nEOF\n",
		"echo ${arr[1]}\n",
	}

	for _, snippet := range snippets {
		snippet := snippet
		t.Run(snippet, func(t *testing.T) {
			t.Parallel()
			cmd := exec.Command(zsh, "-n")
			f, err := pty.Start(cmd)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			if _, err := f.Write([]byte(snippet)); err != nil {
				t.Fatal(err)
			}
			f.Write([]byte{4}) // Ctrl-D, end of input

			if err := cmd.Wait(); err != nil {
				out, _ := bufio.NewReader(f).ReadString('\n')
				t.Fatalf("zsh -n rejected %q: %v (%s)", snippet, err, out)
			}
		})
	}
}

// TestScannerTokenizesWhatZshAccepts runs a bare-dollar expansion
// through the external scanner end to end and asserts it reaches
// SIMPLE_VARIABLE_NAME without falling through to ILLEGAL, the same
// two-call sequence a generalized parser would drive from its
// command-word and after-bare-dollar grammar positions.
func TestScannerTokenizesWhatZshAccepts(t *testing.T) {
	zshPath(t) // still gate on zsh being present, to keep both tests paired

	s := Create()
	lx := host.NewByteLexer([]byte("$foo"))

	startValid := token.NewSet(token.BARE_DOLLAR, token.SIMPLE_VARIABLE_NAME, token.VARIABLE_NAME)
	tok, ok := Scan(s, lx, startValid)
	if !ok || tok != token.BARE_DOLLAR {
		t.Fatalf("want BARE_DOLLAR, got %s ok=%v", tok, ok)
	}

	tok, ok = Scan(s, lx, startValid)
	if !ok || tok != token.SIMPLE_VARIABLE_NAME {
		t.Fatalf("want SIMPLE_VARIABLE_NAME, got %s ok=%v", tok, ok)
	}
}
