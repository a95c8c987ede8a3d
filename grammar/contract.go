// Package grammar is the declarative half of the contract between the
// parser and the external scanner (spec §1 item 2): for each named
// parser state, which external terminals are valid. It does not build
// or run a GLR table — that belongs to the parser-generator runtime,
// an external collaborator (spec §1) — it only records, in one place,
// the shape of productions that drive scanner.Scan's valid-symbols
// bitset, so the scanner can be tested in isolation and so an
// interoperable scanner implementation has something concrete to
// satisfy.
package grammar

import "github.com/georgeharker/tree-sitter-zsh/token"

// State names one point in the grammar where the parser calls the
// external scanner. Names follow the teacher's convention of naming
// grammar positions after the production they sit in
// (syntax/parser.go's wordPart/paramExp/arithmExpr method names).
type State string

const (
	// Start of a simple command or assignment word list.
	CommandWord State = "command_word"
	// Immediately after a bare '$', deciding what kind of expansion
	// follows (spec §4.2 steps 5-9).
	AfterBareDollar State = "after_bare_dollar"
	// Inside ${ ... }, right after the opening brace or a VARIABLE_NAME.
	ParamExpName State = "param_exp_name"
	// Inside ${ ... #...} / ${ ... %...} suffix-removal operands.
	ParamExpSuffix State = "param_exp_suffix"
	// Inside ${ ... /pat/repl} substitution operands.
	ParamExpSubstitute State = "param_exp_substitute"
	// Inside [[ ... ]], before an operator or operand.
	TestCommandBody State = "test_command_body"
	// Right after =~ inside [[ ... ]].
	TestRegexOperand State = "test_regex_operand"
	// Right after << or <<- naming the heredoc delimiter.
	HeredocDelimiter State = "heredoc_delimiter"
	// Inside a heredoc body, before the first interpolation or the
	// closing delimiter.
	HeredocBody State = "heredoc_body"
	// Inside a raw (non-interpolated) heredoc body.
	HeredocBodyRaw State = "heredoc_body_raw"
	// A case-statement pattern alternative.
	CasePattern State = "case_pattern"
	// Inside $(( ... )) or (( ... )), or $[ ... ].
	ArithmeticBody State = "arithmetic_body"
	// Inside a subscript, e.g. ${arr[ ... ]}.
	Subscript State = "subscript"
	// Right after '(' that might open EXTGLOB_FLAGS, e.g. "(#...)".
	AfterOpenParen State = "after_open_paren"
)

// Rule is one entry in the contract: the terminals valid when the
// parser calls the scanner from State, and the states it may
// transition to (informational; the scanner itself only reads
// ValidSymbols, it never consults Transitions).
type Rule struct {
	ValidSymbols token.Set
	Transitions  []State
}

// Contract is the full grammar→scanner table. It is built once at
// package init from concrete token lists rather than hand-maintained
// bitmasks, mirroring how the teacher keeps tokNames as a literal map
// in syntax/tokens.go instead of deriving it at runtime.
var Contract = map[State]Rule{
	CommandWord: {
		ValidSymbols: token.NewSet(
			token.NEWLINE, token.CONCAT, token.BARE_DOLLAR,
			token.PEEK_BARE_DOLLAR, token.VARIABLE_NAME,
			token.SIMPLE_VARIABLE_NAME, token.SPECIAL_VARIABLE_NAME,
			token.FILE_DESCRIPTOR, token.HEREDOC_ARROW,
			token.HEREDOC_ARROW_DASH, token.EXTGLOB_PATTERN,
			token.EMPTY_VALUE, token.ESAC,
		),
		Transitions: []State{AfterBareDollar, HeredocDelimiter},
	},
	AfterBareDollar: {
		ValidSymbols: token.NewSet(
			token.BRACE_START, token.OPENING_PAREN,
			token.DOUBLE_OPENING_PAREN, token.OPENING_BRACKET,
			token.SIMPLE_VARIABLE_NAME, token.SPECIAL_VARIABLE_NAME,
			token.RAW_DOLLAR,
		),
		Transitions: []State{ParamExpName, ArithmeticBody, CommandWord},
	},
	ParamExpName: {
		ValidSymbols: token.NewSet(
			token.VARIABLE_NAME, token.SPECIAL_VARIABLE_NAME,
			token.HASH_PATTERN, token.DOUBLE_HASH_PATTERN,
			token.IMMEDIATE_DOUBLE_HASH, token.PATTERN_START,
			token.PATTERN_SUFFIX_START, token.CLOSING_BRACE,
			token.EXPANSION_WORD, token.ARRAY_STAR_TOKEN,
			token.ARRAY_AT_TOKEN, token.OPENING_BRACKET,
		),
		Transitions: []State{ParamExpSuffix, ParamExpSubstitute, Subscript},
	},
	ParamExpSuffix: {
		ValidSymbols: token.NewSet(token.EXPANSION_WORD, token.CLOSING_BRACE),
	},
	ParamExpSubstitute: {
		ValidSymbols: token.NewSet(token.EXPANSION_WORD, token.CLOSING_BRACE),
	},
	TestCommandBody: {
		ValidSymbols: token.NewSet(
			token.BARE_DOLLAR, token.SIMPLE_VARIABLE_NAME,
			token.SPECIAL_VARIABLE_NAME, token.TEST_OPERATOR,
			token.TEST_COMMAND_END, token.REGEX_NO_SPACE,
		),
		Transitions: []State{TestRegexOperand},
	},
	TestRegexOperand: {
		ValidSymbols: token.NewSet(token.REGEX_NO_SPACE, token.TEST_COMMAND_END),
	},
	HeredocDelimiter: {
		ValidSymbols: token.NewSet(token.HEREDOC_START),
		Transitions:  []State{HeredocBody, HeredocBodyRaw},
	},
	HeredocBody: {
		ValidSymbols: token.NewSet(
			token.HEREDOC_BODY_BEGINNING, token.HEREDOC_CONTENT,
			token.HEREDOC_END, token.BARE_DOLLAR, token.PEEK_BARE_DOLLAR,
		),
	},
	HeredocBodyRaw: {
		ValidSymbols: token.NewSet(token.SIMPLE_HEREDOC_BODY, token.HEREDOC_END),
	},
	CasePattern: {
		ValidSymbols: token.NewSet(
			token.EXTGLOB_PATTERN, token.ESAC, token.CLOSING_PAREN,
		),
	},
	ArithmeticBody: {
		ValidSymbols: token.NewSet(
			token.DOUBLE_CLOSING_PAREN, token.CLOSING_BRACKET,
			token.SIMPLE_VARIABLE_NAME, token.BARE_DOLLAR,
		),
	},
	Subscript: {
		ValidSymbols: token.NewSet(
			token.ARRAY_STAR_TOKEN, token.ARRAY_AT_TOKEN,
			token.CLOSING_BRACKET, token.SIMPLE_VARIABLE_NAME,
		),
	},
	AfterOpenParen: {
		ValidSymbols: token.NewSet(token.ZSH_EXTENDED_GLOB_FLAGS, token.OPENING_PAREN),
	},
}

// ValidSymbolsFor returns the terminals valid when the parser calls
// the scanner from st, or the empty set for an unknown state.
func ValidSymbolsFor(st State) token.Set {
	return Contract[st].ValidSymbols
}

// WithRecovery returns vs with ERROR_RECOVERY additionally marked, the
// way a generalized parser signals that it is in error-recovery mode
// (spec §6, §7) alongside whatever terminals vs already holds.
func WithRecovery(vs token.Set) token.Set {
	vs.Add(token.ERROR_RECOVERY)
	return vs
}
