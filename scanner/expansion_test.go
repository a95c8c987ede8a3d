package scanner

import (
	"testing"

	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

func TestScanExpansionWordStopsAtClosingBrace(t *testing.T) {
	s := Create()
	s.Contexts.Push(context.PARAMETER)
	lx := host.NewByteLexer([]byte("default}"))
	valid := token.NewSet(token.EXPANSION_WORD)

	tok, ok := scanExpansionWord(s, lx, valid, false)
	if !ok || tok != token.EXPANSION_WORD {
		t.Fatalf("want EXPANSION_WORD, got %s ok=%v", tok, ok)
	}
	if lx.Lookahead() != '}' {
		t.Fatalf("want cursor left before '}', got %q", lx.Lookahead())
	}
}

func TestScanExpansionWordStopsBeforeNestedExpansion(t *testing.T) {
	s := Create()
	s.Contexts.Push(context.PARAMETER)
	lx := host.NewByteLexer([]byte("pre$inner}"))
	valid := token.NewSet(token.EXPANSION_WORD)

	tok, ok := scanExpansionWord(s, lx, valid, false)
	if !ok || tok != token.EXPANSION_WORD {
		t.Fatalf("want EXPANSION_WORD, got %s ok=%v", tok, ok)
	}
	// The '$' peek advances the lexer's raw cursor speculatively, but
	// never marks it: the token's real boundary is EndPos, and a host
	// re-seeks there before the next scan (mirrored here with Reset).
	if got := lx.TokenText(0); got != "pre" {
		t.Fatalf("want token text %q, got %q", "pre", got)
	}
	lx.Reset(lx.EndPos())
	if lx.Lookahead() != '$' {
		t.Fatalf("want cursor left at '$' after re-seeking to EndPos, got %q", lx.Lookahead())
	}
}

func TestScanExpansionWordBreaksOnSlashWhenSubstituting(t *testing.T) {
	s := Create()
	s.Contexts.Push(context.PARAM_PATTERN_SUBSTITUTE)
	lx := host.NewByteLexer([]byte("old/new}"))
	valid := token.NewSet(token.EXPANSION_WORD)

	tok, ok := scanExpansionWord(s, lx, valid, false)
	if !ok || tok != token.EXPANSION_WORD {
		t.Fatalf("want EXPANSION_WORD, got %s ok=%v", tok, ok)
	}
	if lx.Lookahead() != '/' {
		t.Fatalf("want cursor left at '/', got %q", lx.Lookahead())
	}
}

func TestScanExpansionWordSkippedDuringRecovery(t *testing.T) {
	s := Create()
	s.Contexts.Push(context.PARAMETER)
	lx := host.NewByteLexer([]byte("default}"))
	valid := token.NewSet(token.EXPANSION_WORD)

	if _, ok := scanExpansionWord(s, lx, valid, true); ok {
		t.Fatal("expansion word scanning should be skipped during error recovery")
	}
}

func TestScanExpansionWordRequiresParameterContext(t *testing.T) {
	s := Create()
	lx := host.NewByteLexer([]byte("default}"))
	valid := token.NewSet(token.EXPANSION_WORD)

	if _, ok := scanExpansionWord(s, lx, valid, false); ok {
		t.Fatal("expansion word scanning should require a parameter-expansion context")
	}
}
