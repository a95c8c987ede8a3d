package scanner

import (
	"github.com/georgeharker/tree-sitter-zsh/host"
	"github.com/georgeharker/tree-sitter-zsh/token"
)

// Create allocates a zero-initialized scanner instance with empty
// stacks (spec §6's create()).
func Create() *State { return New() }

// Destroy releases all memory owned by s. Go's garbage collector
// reclaims everything reachable from s once the caller drops its
// reference; Destroy exists only to keep the four-function host
// contract from spec §6 explicit at the call site, the way a CGo or
// C-ABI binding layer would need it.
func Destroy(s *State) { _ = s }

// Scan advances lx and sets the result according to the token
// dispatcher's priority list (spec §4.2), returning (tok, true) on
// success. The caller is responsible for recording tok as the parser's
// result_symbol; this package has no notion of a result-symbol global,
// unlike a C scanner.c, because Go lets the value simply be returned.
func (s *State) Scan(lx host.Lexer, valid ValidSymbols) (token.Token, bool) {
	return Scan(s, lx, valid)
}

// Serialize writes s's state into buf (spec §6's serialize()).
func (s *State) Serialize(buf []byte) int { return Serialize(s, buf) }

// Deserialize replaces s's state from buf (spec §6's deserialize()).
func (s *State) Deserialize(buf []byte) { Deserialize(s, buf) }
