package scanner

import (
	"testing"

	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

func TestScanExtglobPatternNested(t *testing.T) {
	s := Create()
	lx := host.NewByteLexer([]byte("@(a|b*(c))"))
	valid := token.NewSet(token.EXTGLOB_PATTERN)

	tok, ok := scanExtglobPattern(s, lx, valid)
	if !ok || tok != token.EXTGLOB_PATTERN {
		t.Fatalf("want EXTGLOB_PATTERN, got %s ok=%v", tok, ok)
	}
	if s.GlobParenDepth != 0 {
		t.Fatalf("want balanced paren depth 0, got %d", s.GlobParenDepth)
	}
}

func TestScanExtglobPatternStopsAtEsac(t *testing.T) {
	s := Create()
	lx := host.NewByteLexer([]byte("*.txt esac"))
	valid := token.NewSet(token.EXTGLOB_PATTERN)

	tok, ok := scanExtglobPattern(s, lx, valid)
	if !ok || tok != token.EXTGLOB_PATTERN {
		t.Fatalf("want EXTGLOB_PATTERN, got %s ok=%v", tok, ok)
	}
	for lx.Lookahead() == ' ' {
		lx.Advance(true)
	}
	if !looksLikeEsac(lx) {
		t.Fatal("want the remaining input to be exactly the esac boundary")
	}
}

func TestScanExtglobPatternRefusedInParameterExpansion(t *testing.T) {
	s := Create()
	s.Contexts.Push(context.PARAMETER)
	lx := host.NewByteLexer([]byte("*.txt"))
	valid := token.NewSet(token.EXTGLOB_PATTERN)

	if _, ok := scanExtglobPattern(s, lx, valid); ok {
		t.Fatal("extglob scanning should be refused inside parameter expansion")
	}
}
