// Package heredoc tracks the stack of pending here-documents between
// scan calls (spec §3, §4.3): which delimiters are still open, their
// indent/interpolation policy, and the scratch state needed to match
// a closing delimiter one byte at a time against a single-lookahead
// host lexer.
package heredoc

import "github.com/georgeharker/tree-sitter-zsh/host"

// Doc is one pending here-document, FIFO-ordered with its siblings
// the way the teacher's parser.heredocs queue orders Redirect nodes
// awaiting a body (syntax/parser.go's buriedHdocs/heredocs fields).
type Doc struct {
	IsRaw        bool // delimiter was quoted or backslash-escaped
	Started      bool // body has begun emitting content
	AllowsIndent bool // <<- form: strip leading tabs
	Delimiter    []byte

	leadingWord []byte // scratch buffer for per-line prefix matching
}

// Queue is the ordered sequence of pending heredoc bodies, processed
// oldest-first: "heredocs emit their bodies in the same order their
// <</<<- operators were encountered" (spec §8).
type Queue struct {
	pending []*Doc
}

// Push enqueues a newly opened heredoc, called when the scanner emits
// HEREDOC_ARROW or HEREDOC_ARROW_DASH.
func (q *Queue) Push(d *Doc) { q.pending = append(q.pending, d) }

// Front returns the oldest pending heredoc, or nil if none remain.
func (q *Queue) Front() *Doc {
	if len(q.pending) == 0 {
		return nil
	}
	return q.pending[0]
}

// PopFront removes the oldest pending heredoc once its end delimiter
// has matched.
func (q *Queue) PopFront() {
	if len(q.pending) == 0 {
		return
	}
	q.pending = q.pending[1:]
}

// Len reports how many heredoc bodies are still pending.
func (q *Queue) Len() int { return len(q.pending) }

// Docs exposes the pending queue oldest-first, for serialization.
func (q *Queue) Docs() []*Doc { return q.pending }

// SetDocs replaces the queue wholesale, used by deserialize.
func (q *Queue) SetDocs(docs []*Doc) { q.pending = docs }

// isWordBreak reports whether b ends an unquoted heredoc delimiter
// word, mirroring the teacher's wordBreak helper in syntax/lexer.go.
func isWordBreak(b byte) bool {
	switch b {
	case ' ', '\t', '\n', ';', '&', '>', '<', '|', '(', ')', '\r', 0:
		return true
	default:
		return false
	}
}

// ScanStart implements scan_heredoc_start (spec §4.3): skip leading
// whitespace, notice a leading quote or backslash to mark the body
// raw (not interpolated), then read a POSIX word into the delimiter,
// honoring one-character backslash escapes and quoted runs.
func ScanStart(lx host.Lexer) (delimiter []byte, isRaw bool) {
	for lx.Lookahead() == ' ' || lx.Lookahead() == '\t' {
		lx.Advance(false)
	}

	var buf []byte
	quote := byte(0)
	for {
		b := lx.Lookahead()
		if quote == 0 && isWordBreak(b) {
			break
		}
		switch {
		case quote == 0 && (b == '\'' || b == '"'):
			isRaw = true
			quote = b
			lx.Advance(true)
		case quote != 0 && b == quote:
			quote = 0
			lx.Advance(true)
		case b == '\\' && quote != '\'':
			isRaw = true
			lx.Advance(false)
			if nb := lx.Lookahead(); nb != 0 {
				buf = append(buf, nb)
				lx.Advance(true)
			}
		case b == 0:
			lx.Advance(true)
			return buf, isRaw
		default:
			buf = append(buf, b)
			lx.Advance(true)
		}
	}
	return buf, isRaw
}

// ContentResult names which terminal scan_heredoc_content decided to
// emit, per spec §4.3(a)-(d).
type ContentResult int

const (
	ContentNone ContentResult = iota
	ContentMiddle
	ContentEnd
)

// ScanContent implements scan_heredoc_content: consume bytes of the
// current heredoc body, stopping because an interpolation point was
// reached (ContentMiddle, only in non-raw mode, only after the cursor
// has advanced at least once), because the end delimiter matched
// (ContentEnd, which also pops d from q), or because input ran out
// after some progress (ContentEnd, without popping d).
func ScanContent(lx host.Lexer, q *Queue, d *Doc) ContentResult {
	advanced := false
	for {
		if lx.IsEOF() {
			if advanced {
				return ContentEnd
			}
			return ContentNone
		}
		b := lx.Lookahead()
		if b == '\n' {
			lx.Advance(true)
			advanced = true
			if matchesDelimiter(lx, d) {
				q.PopFront()
				return ContentEnd
			}
			continue
		}
		if !d.IsRaw && advanced && (b == '$' || b == '`') {
			return ContentMiddle
		}
		lx.Advance(true)
		advanced = true
	}
}

// matchesDelimiter implements scan_heredoc_end_identifier: compare the
// current line's prefix (after optional <<- tab stripping) against
// d.Delimiter byte-for-byte. On a mismatch the stripped tabs and the
// bytes that did match stay consumed.
func matchesDelimiter(lx host.Lexer, d *Doc) bool {
	if d.AllowsIndent {
		for lx.Lookahead() == '\t' {
			lx.Advance(true)
		}
	}
	d.leadingWord = d.leadingWord[:0]
	for i := 0; i < len(d.Delimiter); i++ {
		b := lx.Lookahead()
		if b != d.Delimiter[i] {
			return false
		}
		d.leadingWord = append(d.leadingWord, b)
		lx.Advance(true)
	}
	// The delimiter must be the entire line, not just a prefix of a
	// longer word.
	switch lx.Lookahead() {
	case '\n', 0:
		return true
	default:
		return false
	}
}

// SimpleBody reports whether d has not yet started. The dispatcher
// reads d.Started directly and does not call this.
func (d *Doc) SimpleBody() bool { return !d.Started }
