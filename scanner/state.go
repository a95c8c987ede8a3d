// Package scanner implements the external, context-sensitive zsh
// lexer (spec §2-§8): the token dispatcher, heredoc and context
// bookkeeping, and the create/destroy/serialize/deserialize/scan host
// contract (spec §6).
package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/heredoc"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// lastEmission tags which of the two one-scan history flags (spec
// §3, §4.2 step 1) was most recently set, replacing the teacher's
// pattern of two independent booleans (syntax/parser.go keeps similar
// single-scan flags like p.spaced/p.newLine) with one small enum, per
// the re-architecture note in spec §9.
type lastEmission uint8

const (
	lastNone lastEmission = iota
	lastVariableName
	lastBareDollar
)

// State is the scanner's entire mutable entity (spec §3). The zero
// value is a valid freshly created scanner.
type State struct {
	GlobParenDepth uint8

	ExtInDoubleQuote  bool
	ExtSawOutsideQuote bool

	Contexts context.Stack
	Heredocs heredoc.Queue

	last lastEmission

	// scratch, not serialized: the lexer position at which
	// PEEK_BARE_DOLLAR was last emitted, kept until the next peek or
	// Reset, so it is never emitted twice in succession for the same
	// position (spec §5).
	peekedBareDollarAt int
	havePeekedPos      bool
}

// New returns a zero-initialized scanner state, equivalent to the
// host contract's create() (spec §6).
func New() *State { return &State{} }

// Reset restores s to a fresh, empty state, reusing its backing
// slices the way context.Stack.Reset and the teacher's batch
// allocators avoid reallocating on every parse.
func (s *State) Reset() {
	s.GlobParenDepth = 0
	s.ExtInDoubleQuote = false
	s.ExtSawOutsideQuote = false
	s.Contexts.Reset()
	s.Heredocs.SetDocs(nil)
	s.last = lastNone
	s.havePeekedPos = false
}

// consumeHistory reads and clears the one-scan history flags (spec
// §4.2 step 1), returning what the previous successful scan emitted.
func (s *State) consumeHistory() lastEmission {
	last := s.last
	s.last = lastNone
	return last
}

func (s *State) setLast(l lastEmission) { s.last = l }

// justReturnedVariableName mirrors spec §3's just_returned_variable_name.
func (l lastEmission) justReturnedVariableName() bool { return l == lastVariableName }

// justReturnedBareDollar mirrors spec §3's just_returned_bare_dollar.
func (l lastEmission) justReturnedBareDollar() bool { return l == lastBareDollar }

// markPeek records that PEEK_BARE_DOLLAR was just emitted at pos, the
// sole zero-width emission, which must not repeat for the same
// position (spec §5).
func (s *State) markPeek(pos int) { s.peekedBareDollarAt, s.havePeekedPos = pos, true }

// alreadyPeekedAt reports whether PEEK_BARE_DOLLAR already fired here.
func (s *State) alreadyPeekedAt(pos int) bool {
	return s.havePeekedPos && s.peekedBareDollarAt == pos
}

// ValidSymbols is the bitset the host passes to Scan on every call
// (spec §2, §6): the terminals the parser could accept from its
// current state.
type ValidSymbols = token.Set
