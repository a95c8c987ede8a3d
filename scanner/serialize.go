package scanner

import (
	"encoding/binary"

	"github.com/georgeharker/tree-sitter-zsh/context"
	"github.com/georgeharker/tree-sitter-zsh/heredoc"
)

// StateError describes a problem serializing or restoring scanner
// state, with the byte offset where it occurred, the way the teacher
// reserves a concrete error type (syntax.ParseError) for the one place
// a caller inspects structure instead of just a message. Serialize and
// Deserialize do not return it: they report failure as a 0 length and
// as a reset to a fresh state.
type StateError struct {
	Op  string
	Pos int
}

func (e *StateError) Error() string {
	return "scanner: " + e.Op + " failed at byte " + itoa(e.Pos)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Serialize writes s into buf in the layout fixed by spec §4.4,
// returning the number of bytes written, or 0 if it would not fit
// (spec §6's serialize contract). It never allocates beyond what the
// caller-provided buf can hold.
func Serialize(s *State, buf []byte) int {
	tags := s.Contexts.Tags()
	docs := s.Heredocs.Docs()

	need := 7 + len(tags)
	for _, d := range docs {
		need += 3 + 4 + len(d.Delimiter)
	}
	if need > len(buf) {
		return 0
	}

	n := 0
	buf[n] = s.GlobParenDepth
	n++
	buf[n] = boolByte(s.ExtInDoubleQuote)
	n++
	buf[n] = boolByte(s.ExtSawOutsideQuote)
	n++
	buf[n] = byte(len(tags))
	n++
	buf[n] = byte(len(docs))
	n++
	buf[n] = boolByte(s.last.justReturnedVariableName())
	n++
	buf[n] = boolByte(s.last.justReturnedBareDollar())
	n++

	for _, tag := range tags {
		buf[n] = byte(tag)
		n++
	}
	for _, d := range docs {
		buf[n] = boolByte(d.IsRaw)
		n++
		buf[n] = boolByte(d.Started)
		n++
		buf[n] = boolByte(d.AllowsIndent)
		n++
		binary.LittleEndian.PutUint32(buf[n:], uint32(len(d.Delimiter)))
		n += 4
		n += copy(buf[n:], d.Delimiter)
	}
	return n
}

// Deserialize replaces s's state from buf (spec §6's deserialize
// contract). A zero-length buffer yields a fresh scanner; any other
// truncated or malformed buffer is treated as a reset rather than an
// error, matching spec §4.4's "partial buffers are considered a
// reset."
func Deserialize(s *State, buf []byte) {
	s.Reset()
	if len(buf) == 0 {
		return
	}
	if len(buf) < 7 {
		return
	}
	globDepth := buf[0]
	extInDQ := buf[1] != 0
	extSawOutside := buf[2] != 0
	nCtx := int(buf[3])
	nDocs := int(buf[4])
	hadVarName := buf[5] != 0
	hadBareDollar := buf[6] != 0
	off := 7

	if off+nCtx > len(buf) {
		s.Reset()
		return
	}
	tags := make([]context.Kind, nCtx)
	for i := 0; i < nCtx; i++ {
		tags[i] = context.Kind(buf[off])
		off++
	}

	docs := make([]*heredoc.Doc, 0, nDocs)
	for i := 0; i < nDocs; i++ {
		if off+3+4 > len(buf) {
			s.Reset()
			return
		}
		d := &heredoc.Doc{
			IsRaw:        buf[off] != 0,
			Started:      buf[off+1] != 0,
			AllowsIndent: buf[off+2] != 0,
		}
		off += 3
		size := int(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
		if size < 0 || off+size > len(buf) {
			s.Reset()
			return
		}
		d.Delimiter = append([]byte(nil), buf[off:off+size]...)
		off += size
		docs = append(docs, d)
	}

	s.GlobParenDepth = globDepth
	s.ExtInDoubleQuote = extInDQ
	s.ExtSawOutsideQuote = extSawOutside
	s.Contexts.SetTags(tags)
	s.Heredocs.SetDocs(docs)
	switch {
	case hadVarName:
		s.last = lastVariableName
	case hadBareDollar:
		s.last = lastBareDollar
	default:
		s.last = lastNone
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
