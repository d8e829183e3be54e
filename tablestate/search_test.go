package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTermTrimsWhitespace(t *testing.T) {
	s := NewSearchState()
	s.SetTerm("  golang  ")
	assert.Equal(t, "golang", s.Term())
}

func TestBlankInputsDegradeToEmpty(t *testing.T) {
	s := NewSearchState()
	for _, raw := range []string{"", "   ", "\t\n"} {
		s.SetTerm(raw)
		if s.Term() != "" {
			t.Fatalf("term %q: expected empty, got %q", raw, s.Term())
		}
	}
	assert.True(t, s.IsEmpty())
}

func TestSetTermReportsChange(t *testing.T) {
	s := NewSearchState()
	assert.True(t, s.SetTerm("a"))
	assert.False(t, s.SetTerm(" a "), "same term after trim is not a change")
	assert.True(t, s.SetTerm(""))
}
