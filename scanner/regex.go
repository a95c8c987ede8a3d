package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// --- step 21: REGEX family ---

// scanRegexFamily implements the three REGEX variants (spec §4.2 item
// 21): a balanced scan through parens/brackets/braces that honors
// single-quoted literals, differing only in what terminates it.
func scanRegexFamily(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	switch {
	case valid.Has(token.REGEX_NO_SPACE):
		return scanRegexNoSpace(lx)
	case valid.Has(token.REGEX_NO_SLASH):
		return scanBalancedRegex(lx, true, token.REGEX_NO_SLASH)
	case valid.Has(token.REGEX):
		return scanBalancedRegex(lx, false, token.REGEX)
	default:
		return token.ILLEGAL, false
	}
}

func scanBalancedRegex(lx host.Lexer, stopOnSlash bool, want token.Token) (token.Token, bool) {
	depth := 0
	consumed := false
	for {
		b := lx.Lookahead()
		switch {
		case b == 0:
			if consumed {
				lx.MarkEnd()
				return want, true
			}
			return token.ILLEGAL, false
		case b == '\'':
			lx.Advance(false)
			consumed = true
			for lx.Lookahead() != '\'' && !lx.IsEOF() {
				lx.Advance(false)
			}
			if lx.Lookahead() == '\'' {
				lx.Advance(false)
			}
		case b == '(' || b == '[' || b == '{':
			depth++
			lx.Advance(false)
			consumed = true
		case b == ')' || b == ']' || b == '}':
			if depth == 0 {
				if consumed {
					lx.MarkEnd()
					return want, true
				}
				return token.ILLEGAL, false
			}
			depth--
			lx.Advance(false)
			consumed = true
		case stopOnSlash && b == '/' && depth == 0:
			if consumed {
				lx.MarkEnd()
				return want, true
			}
			return token.ILLEGAL, false
		case isHorizontalSpace(b) || b == '\n':
			if depth == 0 {
				if consumed {
					lx.MarkEnd()
					return want, true
				}
				return token.ILLEGAL, false
			}
			lx.Advance(false)
			consumed = true
		default:
			lx.Advance(false)
			consumed = true
		}
	}
}

// scanRegexNoSpace stops at any unquoted whitespace and additionally
// requires at least one non-alphanumeric-dollar-underscore-dash
// character to have been consumed, so plain identifiers fall through
// to SIMPLE_VARIABLE_NAME instead (spec §4.2 item 21).
func scanRegexNoSpace(lx host.Lexer) (token.Token, bool) {
	depth := 0
	consumed := false
	sawSpecial := false
	isWordy := func(b byte) bool {
		return isAlpha(b) || isDigit(b) || b == '$' || b == '-'
	}
	for {
		b := lx.Lookahead()
		switch {
		case b == 0 || isHorizontalSpace(b) || b == '\n':
			goto done
		case b == '\'':
			lx.Advance(false)
			consumed, sawSpecial = true, true
			for lx.Lookahead() != '\'' && !lx.IsEOF() {
				lx.Advance(false)
			}
			if lx.Lookahead() == '\'' {
				lx.Advance(false)
			}
		case b == '(' || b == '[' || b == '{':
			depth++
			lx.Advance(false)
			consumed, sawSpecial = true, true
		case b == ')' || b == ']' || b == '}':
			if depth == 0 {
				goto done
			}
			depth--
			lx.Advance(false)
			consumed, sawSpecial = true, true
		default:
			if !isWordy(b) {
				sawSpecial = true
			}
			lx.Advance(false)
			consumed = true
		}
	}
done:
	if consumed && sawSpecial {
		lx.MarkEnd()
		return token.REGEX_NO_SPACE, true
	}
	return token.ILLEGAL, false
}
