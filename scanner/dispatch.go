package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/heredoc"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// Scan is the scanner half of the host contract's scan() function
// (spec §6): given the set of terminals the parser could currently
// accept, advance lx and decide which single external token, if any,
// to emit. It returns (tok, true) on success or (ILLEGAL, false) if
// no handler matched, leaving lx's position exactly where it was on
// entry (spec §9: a "no token" result must not leave any externally
// observable state changed). Several handlers speculatively advance
// lx with Advance(false) to peek ahead before deciding they don't
// match, so rather than trust every handler to unwind its own peeks,
// Scan checkpoints lx's position before each attempt and rewinds with
// lx.Reset on failure; a handler that does commit a token bypasses
// the rewind by returning immediately.
//
// The order below is the contract: handlers are tried first-match-
// wins, exactly in the sequence spec §4.2 lists them.
func Scan(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	last := s.consumeHistory()
	recovering := valid.Has(token.ERROR_RECOVERY)
	start := lx.Pos()

	if tok, ok := scanNewline(lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanClosingBraceForExpansion(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanConcat(last, lx, valid, s.Contexts.Top()); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanBareDollar(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanPeekBareDollar(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanBraceStartForParamExp(s, last, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if !recovering {
		if tok, ok := scanOpeningParens(s, last, lx, valid); ok {
			return tok, true
		}
		lx.Reset(start)
	}
	if !recovering {
		if tok, ok := scanOpeningBrackets(s, last, lx, valid); ok {
			return tok, true
		}
		lx.Reset(start)
	}
	if tok, ok := scanClosingBrackets(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanClosingParens(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanPatternStart(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanHashPattern(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanArrayOperators(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanEmptyValue(lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if !recovering {
		if tok, ok := scanHeredocFamily(s, lx, valid); ok {
			return tok, true
		}
		lx.Reset(start)
	}
	if tok, ok := scanTestOperator(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanSimpleVariableName(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanSpecialVariableName(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanVariableFamily(s, lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	if !recovering {
		if tok, ok := scanRegexFamily(s, lx, valid); ok {
			return tok, true
		}
		lx.Reset(start)
		if tok, ok := scanExtglobPattern(s, lx, valid); ok {
			return tok, true
		}
		lx.Reset(start)
	}
	if tok, ok := scanExpansionWord(s, lx, valid, recovering); ok {
		return tok, true
	}
	lx.Reset(start)
	if tok, ok := scanBraceStartForRange(lx, valid); ok {
		return tok, true
	}
	lx.Reset(start)
	return token.ILLEGAL, false
}

// --- step 2: NEWLINE ---

func scanNewline(lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.NEWLINE) || lx.Lookahead() != '\n' {
		return token.ILLEGAL, false
	}
	for lx.Lookahead() == '\n' {
		lx.Advance(true)
	}
	return token.NEWLINE, true
}

// --- step 3: closing brace for expansion ---

func scanClosingBraceForExpansion(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if lx.Lookahead() != '}' || !valid.Has(token.CLOSING_BRACE) {
		return token.ILLEGAL, false
	}
	switch s.Contexts.Top() {
	case context.PARAMETER, context.PARAM_PATTERN_SUFFIX, context.PARAM_PATTERN_SUBSTITUTE:
	default:
		return token.ILLEGAL, false
	}
	top := s.Contexts.Top()
	s.Contexts.Pop(top)
	lx.Advance(true)
	return token.CLOSING_BRACE, true
}

// --- step 4: CONCAT ---

func scanConcat(last lastEmission, lx host.Lexer, valid token.Set, top context.Kind) (token.Token, bool) {
	if !valid.Has(token.CONCAT) {
		return token.ILLEGAL, false
	}
	b := lx.Lookahead()
	if b == 0 {
		return token.ILLEGAL, false
	}
	if b == ';' {
		return token.ILLEGAL, false
	}
	if isSeparator(b) {
		return token.ILLEGAL, false
	}
	if b == '[' && last.justReturnedVariableName() {
		return token.ILLEGAL, false
	}
	if b == '\\' {
		// A backslash followed by a quote or another backslash is an
		// escape that continues the same word (spec §4.2 step 4).
		lx.Advance(false)
		nb := lx.Lookahead()
		if nb == '"' || nb == '\'' || nb == '\\' {
			lx.Advance(true)
			return token.CONCAT, true
		}
		return token.ILLEGAL, false
	}
	lx.Advance(true)
	return token.CONCAT, true
}

// --- step 5: BARE_DOLLAR ---
// (No handler emits RAW_DOLLAR; it exists only in the token namespace.)

func scanBareDollar(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.BARE_DOLLAR) {
		return token.ILLEGAL, false
	}
	for isSpaceOrTab(lx.Lookahead()) {
		lx.Advance(false)
	}
	if lx.Lookahead() != '$' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() == '"' {
		// The double-quoted-string path owns this '$'; back off.
		return token.ILLEGAL, false
	}
	lx.MarkEnd()
	s.setLast(lastBareDollar)
	return token.BARE_DOLLAR, true
}

// --- step 6: PEEK_BARE_DOLLAR ---

func scanPeekBareDollar(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.PEEK_BARE_DOLLAR) {
		return token.ILLEGAL, false
	}
	if lx.Lookahead() != '$' {
		return token.ILLEGAL, false
	}
	pos := lx.Pos()
	if s.alreadyPeekedAt(pos) {
		return token.ILLEGAL, false
	}
	s.markPeek(pos)
	lx.MarkEnd() // zero-width: no Advance
	return token.PEEK_BARE_DOLLAR, true
}

// --- step 7: BRACE_START for ${ ---

func scanBraceStartForParamExp(s *State, last lastEmission, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !last.justReturnedBareDollar() || lx.Lookahead() != '{' {
		return token.ILLEGAL, false
	}
	lx.Advance(true)
	s.Contexts.Push(context.PARAMETER)
	return token.BRACE_START, true
}

// --- step 16: heredoc family ---

func scanHeredocFamily(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if valid.Has(token.HEREDOC_START) && s.Heredocs.Len() > 0 {
		delim, isRaw := heredoc.ScanStart(lx)
		// The delimiter belongs to the heredoc whose arrow was just
		// emitted, the newest one in the queue.
		docs := s.Heredocs.Docs()
		d := docs[len(docs)-1]
		d.Delimiter = delim
		d.IsRaw = d.IsRaw || isRaw
		return token.HEREDOC_START, true
	}

	top := s.Heredocs.Front()
	if top == nil {
		return token.ILLEGAL, false
	}
	if !top.Started {
		if valid.Has(token.HEREDOC_BODY_BEGINNING) {
			res := heredoc.ScanContent(lx, &s.Heredocs, top)
			switch res {
			case heredoc.ContentMiddle:
				top.Started = true
				return token.HEREDOC_BODY_BEGINNING, true
			case heredoc.ContentEnd:
				return token.HEREDOC_END, true
			}
			return token.ILLEGAL, false
		}
		if valid.Has(token.SIMPLE_HEREDOC_BODY) {
			res := heredoc.ScanContent(lx, &s.Heredocs, top)
			switch res {
			case heredoc.ContentMiddle, heredoc.ContentEnd:
				return simpleHeredocResult(res)
			}
			return token.ILLEGAL, false
		}
		return token.ILLEGAL, false
	}

	if valid.Has(token.HEREDOC_END) {
		// Already inside the body; HEREDOC_CONTENT handles the
		// remaining bytes below and pops when it finds the delimiter.
	}
	if valid.Has(token.HEREDOC_CONTENT) || valid.Has(token.HEREDOC_END) {
		res := heredoc.ScanContent(lx, &s.Heredocs, top)
		switch res {
		case heredoc.ContentMiddle:
			return token.HEREDOC_CONTENT, true
		case heredoc.ContentEnd:
			return token.HEREDOC_END, true
		}
	}
	return token.ILLEGAL, false
}

func simpleHeredocResult(res heredoc.ContentResult) (token.Token, bool) {
	if res == heredoc.ContentEnd {
		return token.HEREDOC_END, true
	}
	return token.SIMPLE_HEREDOC_BODY, true
}

// --- step 15: EMPTY_VALUE ---

func scanEmptyValue(lx host.Lexer, valid token.Set) (token.Token, bool) {
	if !valid.Has(token.EMPTY_VALUE) {
		return token.ILLEGAL, false
	}
	switch b := lx.Lookahead(); {
	case b == 0, b == ';', b == '&', isHorizontalSpace(b), b == '\n':
		return token.EMPTY_VALUE, true
	default:
		return token.ILLEGAL, false
	}
}
