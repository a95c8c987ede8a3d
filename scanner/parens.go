package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// --- step 8: opening parens / extended-glob flags ---

func scanOpeningParens(s *State, last lastEmission, lx host.Lexer, valid token.Set) (token.Token, bool) {
	for isSpaceOrTab(lx.Lookahead()) {
		lx.Advance(false)
	}
	if lx.Lookahead() != '(' {
		return token.ILLEGAL, false
	}

	if last.justReturnedBareDollar() {
		lx.Advance(false)
		if lx.Lookahead() == '(' && valid.Has(token.DOUBLE_OPENING_PAREN) {
			lx.Advance(true)
			s.Contexts.Push(context.ARITHMETIC)
			return token.DOUBLE_OPENING_PAREN, true
		}
		if valid.Has(token.OPENING_PAREN) {
			lx.MarkEnd()
			s.Contexts.Push(context.COMMAND)
			return token.OPENING_PAREN, true
		}
		return token.ILLEGAL, false
	}

	lx.Advance(false)
	if lx.Lookahead() == '#' && valid.Has(token.ZSH_EXTENDED_GLOB_FLAGS) {
		lx.Advance(false)
		for isGlobFlagChar(lx.Lookahead()) {
			lx.Advance(false)
		}
		if lx.Lookahead() == ')' {
			lx.Advance(true)
			return token.ZSH_EXTENDED_GLOB_FLAGS, true
		}
		return token.ILLEGAL, false
	}

	if valid.Has(token.OPENING_PAREN) {
		lx.MarkEnd()
		return token.OPENING_PAREN, true
	}
	return token.ILLEGAL, false
}

// --- step 9: opening brackets ---

func scanOpeningBrackets(s *State, last lastEmission, lx host.Lexer, valid token.Set) (token.Token, bool) {
	for isSpaceOrTab(lx.Lookahead()) {
		lx.Advance(false)
	}
	if lx.Lookahead() != '[' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() == '[' && valid.Has(token.TEST_COMMAND_START) {
		lx.Advance(true)
		s.Contexts.Push(context.TEST)
		return token.TEST_COMMAND_START, true
	}
	if last.justReturnedBareDollar() && valid.Has(token.OPENING_BRACKET) {
		lx.MarkEnd()
		s.Contexts.Push(context.ARITHMETIC)
		return token.OPENING_BRACKET, true
	}
	if valid.Has(token.OPENING_BRACKET) {
		lx.MarkEnd()
		return token.OPENING_BRACKET, true
	}
	return token.ILLEGAL, false
}

// --- step 10: closing ] / ]] ---

func scanClosingBrackets(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if lx.Lookahead() != ']' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() == ']' && valid.Has(token.TEST_COMMAND_END) {
		lx.Advance(true)
		s.Contexts.Pop(context.TEST)
		return token.TEST_COMMAND_END, true
	}
	if valid.Has(token.CLOSING_BRACKET) {
		lx.MarkEnd()
		if s.Contexts.Top() == context.ARITHMETIC {
			s.Contexts.Pop(context.ARITHMETIC)
		}
		return token.CLOSING_BRACKET, true
	}
	return token.ILLEGAL, false
}

// --- step 11: closing ) / )) ---

func scanClosingParens(s *State, lx host.Lexer, valid token.Set) (token.Token, bool) {
	if lx.Lookahead() != ')' {
		return token.ILLEGAL, false
	}
	lx.Advance(false)
	if lx.Lookahead() == ')' && valid.Has(token.DOUBLE_CLOSING_PAREN) {
		lx.Advance(true)
		s.Contexts.Pop(context.ARITHMETIC)
		return token.DOUBLE_CLOSING_PAREN, true
	}
	if valid.Has(token.CLOSING_PAREN) {
		lx.MarkEnd()
		if s.Contexts.Top() == context.ARITHMETIC {
			s.Contexts.Pop(context.ARITHMETIC)
		}
		return token.CLOSING_PAREN, true
	}
	return token.ILLEGAL, false
}
