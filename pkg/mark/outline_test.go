package mark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdparsec/pkg/mark"
)

func TestOutline(t *testing.T) {
	t.Parallel()

	source := "# Intro\n\n## Setup\n\n## Setup\n\n### Hello, *World*!\n\n> ## Quoted `code`\n"

	assert.Equal(t, []mark.OutlineEntry{
		{Level: 1, Title: "Intro", Slug: "intro"},
		{Level: 2, Title: "Setup", Slug: "setup"},
		{Level: 2, Title: "Setup", Slug: "setup-1"},
		{Level: 3, Title: "Hello, World!", Slug: "hello-world"},
		{Level: 2, Title: "Quoted code", Slug: "quoted-code"},
	}, mark.Outline(mark.Parse(source)))
}

func TestOutline_Unicode(t *testing.T) {
	t.Parallel()

	entries := mark.Outline(mark.Parse("# Über Straße\n"))

	assert.Equal(t, []mark.OutlineEntry{{Level: 1, Title: "Über Straße", Slug: "über-straße"}}, entries)
}

func TestOutline_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mark.Outline(mark.Parse("just text\n")))
}

func TestPlainString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   string
	}{
		{"plain", "plain"},
		{"**strong** and _em_", "strong and em"},
		{"[link *text*](url)", "link text"},
		{"![alt](img.png)", "alt"},
		{"a\nb", "a b"},
		{"`x` ~~y~~ ==z==", "x y z"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			para := mark.Parse(tt.source).Marks[0].(mark.Paragraph)
			assert.Equal(t, tt.want, mark.PlainString(para.Content))
		})
	}
}
