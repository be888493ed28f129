package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_InlineKey(t *testing.T) {
	t.Parallel()

	para := Root().WithBlock(ScopeParagraph)

	tests := []struct {
		name  string
		a, b  Environment
		equal bool
	}{
		{
			name:  "repeated closers collapse",
			a:     para.WithInline(ScopeSubscript, "~").WithInline(ScopeStrikethrough, "~~").WithInline(ScopeSubscript, "~"),
			b:     para.WithInline(ScopeStrikethrough, "~~").WithInline(ScopeSubscript, "~"),
			equal: true,
		},
		{
			name:  "enclosing blocks other than the paragraph do not matter",
			a:     Root().WithBlock(ScopeBlockquote).WithBlock(ScopeParagraph).WithInline(ScopeEmphasis, "*"),
			b:     para.WithInline(ScopeEmphasis, "*"),
			equal: true,
		},
		{
			name:  "innermost closer matters",
			a:     para.WithInline(ScopeSubscript, "~").WithInline(ScopeStrikethrough, "~~"),
			b:     para.WithInline(ScopeStrikethrough, "~~").WithInline(ScopeSubscript, "~"),
			equal: false,
		},
		{
			name:  "set of closers matters",
			a:     para.WithInline(ScopeEmphasis, "*").WithInline(ScopeSubscript, "~"),
			b:     para.WithInline(ScopeSubscript, "~"),
			equal: false,
		},
		{
			name:  "paragraph matters",
			a:     Root().WithBlock(ScopeHeading).WithInline(ScopeEmphasis, "*"),
			b:     para.WithInline(ScopeEmphasis, "*"),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.equal, tt.a.inlineKey() == tt.b.inlineKey())
		})
	}
}
