package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/heredoc"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// --- step 12: PATTERN_START / PATTERN_SUFFIX_START ---

func scanPatternStart(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if s.Contexts.Top() != context.PARAMETER {
		return token.ILLEGAL, false
	}
	if lx.Lookahead() == '}' {
		return token.ILLEGAL, false
	}
	if valid.Has(token.PATTERN_START) && lx.Lookahead() == '/' {
		lx.Advance(true)
		s.Contexts.Replace(context.PARAM_PATTERN_SUBSTITUTE)
		return token.PATTERN_START, true
	}
	if valid.Has(token.PATTERN_SUFFIX_START) {
		switch lx.Lookahead() {
		case '#', '%':
			lx.Advance(true)
			s.Contexts.Replace(context.PARAM_PATTERN_SUFFIX)
			return token.PATTERN_SUFFIX_START, true
		}
	}
	return token.ILLEGAL, false
}

// --- step 13: hash-pattern tokens inside parameter expansion ---

func scanHashPattern(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if s.Contexts.Top() != context.PARAMETER || lx.Lookahead() != '#' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() == '#' {
		lx.Advance(false)
		if lx.Lookahead() == '}' {
			return token.ILLEGAL, false
		}
		if valid.Has(token.IMMEDIATE_DOUBLE_HASH) {
			lx.MarkEnd()
			return token.IMMEDIATE_DOUBLE_HASH, true
		}
		if valid.Has(token.DOUBLE_HASH_PATTERN) {
			lx.MarkEnd()
			return token.DOUBLE_HASH_PATTERN, true
		}
		return token.ILLEGAL, false
	}
	if valid.Has(token.HASH_PATTERN) {
		lx.MarkEnd()
		return token.HASH_PATTERN, true
	}
	return token.ILLEGAL, false
}

// --- step 14: array operators * / @ ---

func scanArrayOperators(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	regexValid := valid.Any(token.REGEX, token.REGEX_NO_SLASH, token.REGEX_NO_SPACE)
	if regexValid {
		return token.ILLEGAL, false
	}
	switch lx.Lookahead() {
	case '*':
		if !valid.Has(token.ARRAY_STAR_TOKEN) {
			return token.ILLEGAL, false
		}
		lx.Advance(true)
		return token.ARRAY_STAR_TOKEN, true
	case '@':
		if !valid.Has(token.ARRAY_AT_TOKEN) {
			return token.ILLEGAL, false
		}
		lx.Advance(true)
		return token.ARRAY_AT_TOKEN, true
	default:
		return token.ILLEGAL, false
	}
}

// --- step 17: TEST_OPERATOR ---

func scanTestOperator(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.TEST_OPERATOR) || lx.Lookahead() != '-' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if !isAlpha(lx.Lookahead()) {
		return token.ILLEGAL, false
	}
	n := 0
	for isAlpha(lx.Lookahead()) {
		lx.Advance(false)
		n++
	}
	if !isHorizontalSpace(lx.Lookahead()) {
		if s.Contexts.InParameterExpansion() && lx.Lookahead() == '}' && valid.Has(token.EXPANSION_WORD) {
			lx.MarkEnd()
			return token.EXPANSION_WORD, true
		}
		return token.ILLEGAL, false
	}
	lx.MarkEnd()
	return token.TEST_OPERATOR, true
}

// --- step 18: SIMPLE_VARIABLE_NAME ---

func scanSimpleVariableName(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.SIMPLE_VARIABLE_NAME) {
		return token.ILLEGAL, false
	}
	for isSpaceOrTab(lx.Lookahead()) {
		lx.Advance(false)
	}
	if !isIdentStart(lx.Lookahead()) {
		return token.ILLEGAL, false
	}
	lx.Advance(true)
	for isIdentCont(lx.Lookahead()) {
		lx.Advance(true)
	}
	return token.SIMPLE_VARIABLE_NAME, true
}

// --- step 19: SPECIAL_VARIABLE_NAME ---

func scanSpecialVariableName(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.SPECIAL_VARIABLE_NAME) {
		return token.ILLEGAL, false
	}
	b := lx.Lookahead()
	if !isSpecialVarChar(b) {
		return token.ILLEGAL, false
	}
	if s.Contexts.InParameterExpansion() && (b == '#' || b == '!') {
		return token.ILLEGAL, false
	}
	lx.Advance(true)
	return token.SPECIAL_VARIABLE_NAME, true
}

// --- step 20: VARIABLE_NAME / FILE_DESCRIPTOR / HEREDOC_ARROW ---

func scanVariableFamily(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	for isSpaceOrTab(lx.Lookahead()) {
		lx.Advance(false)
	}
	start := lx.Lookahead()
	// A '<' with no word before it goes straight to the heredoc-arrow
	// check at the end.
	if !isIdentStart(start) && !isDigit(start) && start != '<' {
		return token.ILLEGAL, false
	}
	allDigits := isDigit(start)
	n := 0
	for isIdentCont(lx.Lookahead()) {
		if !isDigit(lx.Lookahead()) {
			allDigits = false
		}
		lx.Advance(false)
		n++
	}
	if n == 0 && start != '<' {
		return token.ILLEGAL, false
	}

	switch lx.Lookahead() {
	case '<':
		if allDigits && valid.Has(token.FILE_DESCRIPTOR) {
			lx.MarkEnd()
			return token.FILE_DESCRIPTOR, true
		}
	case '>':
		if allDigits && valid.Has(token.FILE_DESCRIPTOR) {
			lx.MarkEnd()
			return token.FILE_DESCRIPTOR, true
		}
	}

	if !allDigits && valid.Has(token.VARIABLE_NAME) {
		switch lx.Lookahead() {
		case '=', '[', ':', '%', '@':
			lx.MarkEnd()
			s.setLast(lastVariableName)
			return token.VARIABLE_NAME, true
		case '+':
			lx.Advance(false)
			if lx.Lookahead() == '=' {
				lx.Advance(true)
			} else {
				lx.MarkEnd()
			}
			s.setLast(lastVariableName)
			return token.VARIABLE_NAME, true
		case '-':
			if s.Contexts.InParameterExpansion() {
				lx.MarkEnd()
				s.setLast(lastVariableName)
				return token.VARIABLE_NAME, true
			}
		case '#':
			// Non-numeric '#' after a name (not the empty string) is a
			// VARIABLE_NAME boundary; a purely numeric run never reaches
			// this switch.
			lx.MarkEnd()
			s.setLast(lastVariableName)
			return token.VARIABLE_NAME, true
		case '?':
			lx.Advance(false)
			if isAlpha(lx.Lookahead()) {
				lx.MarkEnd()
				s.setLast(lastVariableName)
				return token.VARIABLE_NAME, true
			}
		default:
			// A bare word ending at a separator or EOF is still a
			// VARIABLE_NAME (spec.md §8 scenarios 1 and 6: `echo $foo`,
			// the `echo` in `arr=(a b c); echo ${arr[@]}`), not just the
			// suffix-triggered forms above. '<' and '>' are excluded here
			// so the HEREDOC_ARROW check below still gets a chance at
			// '<'.
			if b := lx.Lookahead(); b == 0 || (isSeparator(b) && b != '<' && b != '>') {
				lx.MarkEnd()
				s.setLast(lastVariableName)
				return token.VARIABLE_NAME, true
			}
		}
	}

	if lx.Lookahead() == '<' && valid.Any(token.HEREDOC_ARROW, token.HEREDOC_ARROW_DASH) {
		lx.Advance(false)
		if lx.Lookahead() == '<' {
			lx.Advance(false)
			if lx.Lookahead() == '-' && valid.Has(token.HEREDOC_ARROW_DASH) {
				lx.Advance(true)
				s.Heredocs.Push(&heredoc.Doc{AllowsIndent: true})
				return token.HEREDOC_ARROW_DASH, true
			}
			if valid.Has(token.HEREDOC_ARROW) {
				lx.MarkEnd()
				s.Heredocs.Push(&heredoc.Doc{})
				return token.HEREDOC_ARROW, true
			}
		}
	}

	return token.ILLEGAL, false
}

// --- step 24: BRACE_START for {N..M} ranges ---

func scanBraceStartForRange(lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.BRACE_START) || lx.Lookahead() != '{' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if !isDigit(lx.Lookahead()) {
		return token.ILLEGAL, false
	}
	for isDigit(lx.Lookahead()) {
		lx.Advance(false)
	}
	if lx.Lookahead() != '.' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() != '.' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if !isDigit(lx.Lookahead()) {
		return token.ILLEGAL, false
	}
	for isDigit(lx.Lookahead()) {
		lx.Advance(false)
	}
	if lx.Lookahead() != '}' {
		return token.ILLEGAL, false
	}
	lx.Advance(true)
	// Context stack is intentionally not modified here: the grammar
	// handles the matching '}' for a brace range (spec §4.2 item 24).
	return token.BRACE_START, true
}
