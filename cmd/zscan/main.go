// zscan runs the external zsh scanner over one or more files and prints
// the terminals it produces, for inspecting and regression-testing the
// scanner outside of a real parser-generator host.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	maybeio "github.com/google/renameio/v2/maybe"
	diffpkg "github.com/rogpeppe/go-internal/diff"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/fsnotify/fsnotify"

	"github.com/georgeharker/tree-sitter-zsh/grammar"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/scanner"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

var (
	traceOut = flag.String("o", "", "write the token trace to this file instead of stdout, atomically")
	diffPath = flag.String("diff", "", "compare the trace against a previously saved trace file and print the difference")
	watch    = flag.Bool("watch", false, "re-scan each path whenever it changes on disk")
	color    bool

	// zscan has no parser tracking grammar position, so it drives the
	// scanner with a single fixed valid-symbols set approximating the
	// start of a command word; constructs nested inside parameter
	// expansions, tests, or heredoc bodies won't tokenize correctly
	// here, and CONCAT is left out since this driver never knows
	// whether a previous word part makes it meaningful. A real host
	// narrows the set per call using grammar.ValidSymbolsFor(state).
	topLevelSymbols = withoutConcat(grammar.ValidSymbolsFor(grammar.CommandWord))
)

// withoutConcat drops CONCAT from vs.
func withoutConcat(vs token.Set) token.Set {
	var out token.Set
	for tok := token.Token(1); tok < token.Token(token.Count); tok++ {
		if tok != token.CONCAT && vs.Has(tok) {
			out.Add(tok)
		}
	}
	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zscan [flags] [path ...]

zscan runs the external zsh scanner over the given files (or standard
input, if none are given) and prints one line per terminal it emits.

  -o file     write the trace to file instead of stdout, atomically
  -diff file  compare against a previously saved trace file
  -watch      re-scan each path whenever it changes on disk
`)
	}
	flag.Parse()

	color = term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	if *watch {
		if err := watchAll(paths); err != nil {
			fmt.Fprintln(os.Stderr, "zscan:", err)
			os.Exit(1)
		}
		return
	}

	var failed bool
	for _, path := range paths {
		if err := runOne(path); err != nil {
			fmt.Fprintf(os.Stderr, "zscan: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runOne(path string) error {
	src, err := readPath(path)
	if err != nil {
		return err
	}
	trace := traceSource(src)

	switch {
	case *diffPath != "":
		prev, err := os.ReadFile(*diffPath)
		if err != nil {
			return err
		}
		return printDiff(*diffPath, prev, path, trace)
	case *traceOut != "":
		return maybeio.WriteFile(*traceOut, trace, 0o644)
	default:
		_, err := os.Stdout.Write(trace)
		return err
	}
}

func readPath(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// traceSource drives the scanner to EOF and renders one "TOKEN\ttext"
// line per terminal emitted. When no handler matches at the current
// position, a single byte is skipped so the trace can still report on
// malformed input instead of stopping at the first unrecognized byte.
//
// A successful handler's raw cursor can sit past lx.EndPos() (some
// handlers peek ahead with Advance(false) to decide where a token
// ends without consuming what they peeked at — see
// scanner/expansion.go's nested-expansion check). This is the host's
// responsibility to correct: lx is reset to EndPos() after every
// call, success or failure, so the next Scan starts exactly where the
// last token was actually marked to end, never where a handler's
// speculative lookahead happened to leave the cursor.
func traceSource(src []byte) []byte {
	s := scanner.Create()
	lx := host.NewByteLexer(src)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	start := lx.Pos()
	for !lx.IsEOF() {
		tok, ok := s.Scan(lx, topLevelSymbols)
		if !ok {
			lx.Advance(true)
			lx.Reset(lx.EndPos())
			start = lx.EndPos()
			continue
		}
		fmt.Fprintf(w, "%s\t%q\n", tok, lx.TokenText(start))
		lx.Reset(lx.EndPos())
		if lx.EndPos() == start {
			// A zero-width token (EMPTY_VALUE, PEEK_BARE_DOLLAR) would
			// be emitted again at the same spot; skip a byte instead.
			lx.Advance(true)
		}
		start = lx.EndPos()
	}
	w.Flush()
	return buf.Bytes()
}

func printDiff(oldName string, oldData []byte, newName string, newData []byte) error {
	diffBytes := diffpkg.Diff(oldName, oldData, newName, newData)
	if len(diffBytes) == 0 {
		return nil
	}
	if !color {
		os.Stdout.Write(diffBytes)
		return errTraceChanged
	}
	for i, line := range bytes.SplitAfter(diffBytes, []byte("\n")) {
		switch {
		case i < 3:
			os.Stdout.WriteString(ansiBold)
		case bytes.HasPrefix(line, []byte("-")):
			os.Stdout.WriteString(ansiRed)
		case bytes.HasPrefix(line, []byte("+")):
			os.Stdout.WriteString(ansiGreen)
		default:
			os.Stdout.WriteString(ansiReset)
		}
		os.Stdout.Write(line)
	}
	os.Stdout.WriteString(ansiReset)
	return errTraceChanged
}

var errTraceChanged = errors.New("trace differs from the saved snapshot")

const (
	ansiGreen = "[32m"
	ansiRed   = "[31m"
	ansiReset = "[0m"
	ansiBold  = "[1m"
)

// watchAll re-scans every real (non-stdin) path whenever fsnotify
// reports it changed, printing a fresh trace to stdout each time. A
// single goroutine under an errgroup drains the events of every
// watched directory and rescans the matching paths one after another.
func watchAll(paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := map[string]bool{}
	for _, p := range paths {
		if p == "-" {
			continue
		}
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stderr, "zscan: watching for changes, Ctrl-C to stop")
	var g errgroup.Group
	g.Go(func() error {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				for _, p := range paths {
					if p != "-" && filepath.Clean(p) == filepath.Clean(ev.Name) {
						if err := runOne(p); err != nil {
							fmt.Fprintf(os.Stderr, "zscan: %s: %v\n", p, err)
						}
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintln(os.Stderr, "zscan: watch error:", err)
			}
		}
	})
	return g.Wait()
}
