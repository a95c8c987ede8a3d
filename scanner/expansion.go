package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// --- step 23: EXPANSION_WORD ---

// scanExpansionWord consumes a run of characters inside a parameter
// expansion that are not '"', not a '$' introducing a nested
// expansion, not '}' (which closes the expansion), and — while
// substituting a pattern (ShouldBreakOnSlash) — not '/' either. A few
// operator-prefix characters end the word early so the grammar can
// lex them as operators on the next call (spec §4.2 item 23). When
// the host has signaled ERROR_RECOVERY, this speculative handler is
// skipped entirely (spec §7).
func scanExpansionWord(s *State, lx host.Lexer, valid token.Set, recovering bool) (token.Token, bool) {
	if recovering || !valid.Has(token.EXPANSION_WORD) || !s.Contexts.InParameterExpansion() {
		return token.ILLEGAL, false
	}
	breakOnSlash := s.Contexts.Top() == context.PARAM_PATTERN_SUBSTITUTE

	consumed := false
	for {
		b := lx.Lookahead()
		switch {
		case b == 0, b == '"', b == '}':
			goto done
		case b == '#' || b == '%' || b == ']':
			goto done
		case b == ':' && consumed:
			goto done
		case breakOnSlash && b == '/':
			goto done
		case b == '$':
			// Peek past the '$' without committing to it: if it
			// introduces a nested expansion, stop here so the earlier
			// mark_end (from the last accepted byte) is what the
			// grammar sees as this word's boundary.
			lx.Advance(false)
			nb := lx.Lookahead()
			if nb == '{' || nb == '(' || nb == '\'' || isIdentStart(nb) || isDigit(nb) {
				goto done
			}
			lx.Advance(true)
			consumed = true
		default:
			lx.Advance(true)
			consumed = true
		}
	}
done:
	if !consumed {
		return token.ILLEGAL, false
	}
	return token.EXPANSION_WORD, true
}
