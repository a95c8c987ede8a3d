package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// looksLikeEsac checks for the reserved word "esac" at the lexer's
// current byte-by-byte lookahead, without a multi-character peek: it
// advances speculatively and reports whether what followed was indeed
// "esac" followed by a word boundary. Callers that get a false back
// have already consumed up to 4 bytes, which is fine here because
// EXTGLOB_PATTERN scanning treats any byte it looked at as part of its
// own consumed span anyway (spec §4.2 item 22).
func looksLikeEsac(lx host.Lexer) bool {
	word := [4]byte{'e', 's', 'a', 'c'}
	for _, w := range word {
		if lx.Lookahead() != w {
			return false
		}
		lx.Advance(false)
	}
	switch lx.Lookahead() {
	case 0, ' ', '\t', '\n', ';', '&', '|', ')':
		return true
	default:
		return false
	}
}

// --- step 22: EXTGLOB_PATTERN ---

// scanExtglobPattern recognizes the zsh/bash extended-glob operators
// ?(...) *(...) +(...) @(...) !(...), and the bare forms used in case
// alternatives. It tracks GlobParenDepth across the scan (spec §3) and
// refuses to start inside parameter expansion (spec §4.2 item 22),
// and treats a bare "esac" as a hard boundary that ends the pattern
// rather than being consumed by it.
func scanExtglobPattern(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.EXTGLOB_PATTERN) || s.Contexts.InParameterExpansion() {
		return token.ILLEGAL, false
	}
	if looksLikeEsac(lx) {
		return token.ILLEGAL, false
	}

	consumed := false
	for {
		b := lx.Lookahead()
		switch b {
		case 0:
			if consumed {
				lx.MarkEnd()
				return token.EXTGLOB_PATTERN, true
			}
			return token.ILLEGAL, false
		case '?', '*', '+', '@', '!':
			lx.Advance(false) // the flag char; committed either way
			consumed = true
			if lx.Lookahead() == '(' {
				lx.Advance(false)
				s.GlobParenDepth++
			}
		case '(':
			s.GlobParenDepth++
			lx.Advance(false)
			consumed = true
		case ')':
			if s.GlobParenDepth == 0 {
				if consumed {
					lx.MarkEnd()
					return token.EXTGLOB_PATTERN, true
				}
				return token.ILLEGAL, false
			}
			s.GlobParenDepth--
			lx.Advance(false)
			consumed = true
		case '\'':
			lx.Advance(false)
			consumed = true
			for lx.Lookahead() != '\'' && !lx.IsEOF() {
				lx.Advance(false)
			}
			if lx.Lookahead() == '\'' {
				lx.Advance(false)
			}
		case ' ', '\t', '\n', ';', '&', '|':
			if s.GlobParenDepth == 0 {
				if consumed {
					lx.MarkEnd()
					return token.EXTGLOB_PATTERN, true
				}
				return token.ILLEGAL, false
			}
			lx.Advance(false)
			consumed = true
		default:
			if s.GlobParenDepth == 0 && looksLikeEsac(lx) {
				lx.MarkEnd()
				return token.EXTGLOB_PATTERN, true
			}
			lx.Advance(false)
			consumed = true
		}
	}
}

