package context

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestPushPopBalanced(t *testing.T) {
	c := quicktest.New(t)
	var s Stack
	c.Assert(s.Empty(), quicktest.IsTrue)

	s.Push(PARAMETER)
	s.Push(ARITHMETIC)
	c.Assert(s.Top(), quicktest.Equals, ARITHMETIC)
	c.Assert(s.Len(), quicktest.Equals, 2)

	c.Assert(s.Pop(ARITHMETIC), quicktest.IsTrue)
	c.Assert(s.Top(), quicktest.Equals, PARAMETER)
	c.Assert(s.Pop(PARAMETER), quicktest.IsTrue)
	c.Assert(s.Empty(), quicktest.IsTrue)
}

func TestPopMismatchedIsTolerated(t *testing.T) {
	c := quicktest.New(t)
	var s Stack
	s.Push(COMMAND)

	// A stray, mismatched closer still pops the top rather than
	// wedging the stack (spec §3's robustness invariant).
	ok := s.Pop(TEST)
	c.Assert(ok, quicktest.IsFalse)
	c.Assert(s.Empty(), quicktest.IsTrue)
}

func TestPopEmptyIsNoop(t *testing.T) {
	c := quicktest.New(t)
	var s Stack
	c.Assert(s.Pop(PARAMETER), quicktest.IsFalse)
	c.Assert(s.Top(), quicktest.Equals, NONE)
}

func TestPredicates(t *testing.T) {
	c := quicktest.New(t)
	var s Stack

	s.Push(PARAMETER)
	c.Assert(s.InParameterExpansion(), quicktest.IsTrue)
	c.Assert(s.InTest(), quicktest.IsFalse)

	s.Replace(PARAM_PATTERN_SUBSTITUTE)
	c.Assert(s.InParameterExpansion(), quicktest.IsTrue)
	c.Assert(s.ShouldBreakOnSlash(), quicktest.IsTrue)
	c.Assert(s.Len(), quicktest.Equals, 1)

	s.Pop(PARAM_PATTERN_SUBSTITUTE)
	s.Push(TEST)
	c.Assert(s.InTest(), quicktest.IsTrue)
	c.Assert(s.InParameterExpansion(), quicktest.IsFalse)
}

func TestSetTagsRoundTrip(t *testing.T) {
	c := quicktest.New(t)
	var s Stack
	s.SetTags([]Kind{PARAMETER, ARITHMETIC, COMMAND})
	c.Assert(s.Tags(), quicktest.DeepEquals, []Kind{PARAMETER, ARITHMETIC, COMMAND})

	s.Reset()
	c.Assert(s.Empty(), quicktest.IsTrue)
}
