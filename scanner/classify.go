package scanner

// Character classification helpers, grounded on the teacher's
// regOps/paramOps/wordBreak helpers in syntax/lexer.go, adapted to the
// terminals this external scanner (rather than the base grammar lexer)
// is responsible for.

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isHorizontalSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentStart(b byte) bool { return isAlpha(b) }

func isIdentCont(b byte) bool { return isAlpha(b) || isDigit(b) }

// closingPunct are the characters that, appearing in regular (non
// parameter-expansion) context, close some enclosing construct and so
// always break CONCAT/EXPANSION_WORD scanning.
func closingPunct(b byte) bool {
	switch b {
	case ')', '}', ']':
		return true
	default:
		return false
	}
}

// isSeparator reports whether b ends a word for the purposes of the
// CONCAT handler (spec §4.2 step 4): whitespace, redirection, closing
// punctuation, ';', '&', '|'.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '<', '>', ';', '&', '|':
		return true
	default:
		return closingPunct(b)
	}
}

// isSpecialVarChar matches the fixed set of one-character special parameter
// names (spec §6).
func isSpecialVarChar(b byte) bool {
	switch b {
	case '*', '@', '?', '!', '#', '-', '$', '_':
		return true
	default:
		return isDigit(b)
	}
}

// isGlobFlagChar matches the ZSH_EXTENDED_GLOB_FLAGS character class
// (spec §6): letters "iqbmnsBINUXcelfaCo", digits, and '.'.
func isGlobFlagChar(b byte) bool {
	switch b {
	case 'i', 'q', 'b', 'm', 'n', 's', 'B', 'I', 'N', 'U', 'X', 'c', 'e', 'l', 'f', 'a', 'C', 'o', '.':
		return true
	default:
		return isDigit(b)
	}
}
