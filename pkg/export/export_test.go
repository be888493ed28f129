package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdparsec/pkg/export"
	"github.com/yaklabco/mdparsec/pkg/mark"
)

const doc = "# Title\n\nSome *text* and a [link](https://example.com \"Example\").\n\n- [x] done\n- [ ] todo\n\n```\npackage main\n\nfunc main() {}\n```\n"

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{input: "", want: export.FormatTree},
		{input: "tree", want: export.FormatTree},
		{input: "json", want: export.FormatJSON},
		{input: "yaml", want: export.FormatYAML},
		{input: "markdown", want: export.FormatMarkdown},
		{input: "outline", want: export.FormatOutline},
		{input: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := export.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid formats")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, export.Formats(), 5)
}

func TestTree(t *testing.T) {
	t.Parallel()

	root := export.Tree(mark.Parse(doc), true)
	require.NotNil(t, root)
	assert.Equal(t, "Document", root.Type)

	var types []string
	for _, child := range root.Children {
		types = append(types, child.Type)
	}
	assert.Equal(t, []string{"Heading", "Paragraph", "List", "CodeBlock"}, types)

	heading := root.Children[0]
	assert.Equal(t, 1, heading.Level)
	require.NotNil(t, heading.Position)
	assert.Equal(t, export.Point{Line: 1, Column: 1}, heading.Position.Start)

	list := root.Children[2]
	require.Len(t, list.Children, 2)
	require.NotNil(t, list.Children[0].Checked)
	assert.True(t, *list.Children[0].Checked)
	require.NotNil(t, list.Children[1].Checked)
	assert.False(t, *list.Children[1].Checked)

	code := root.Children[3]
	assert.Equal(t, "go", code.Language)
	assert.True(t, code.Detected)
	assert.Equal(t, "package main\n\nfunc main() {}", code.Value)
}

func TestTree_WithoutDetection(t *testing.T) {
	t.Parallel()

	root := export.Tree(mark.Parse(doc), false)
	code := root.Children[3]
	assert.Empty(t, code.Language)
	assert.False(t, code.Detected)
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse(doc), export.Options{Format: export.FormatJSON}))

	var decoded export.Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Document", decoded.Type)
	assert.Contains(t, buf.String(), "\n  \"children\"", "indented by default")

	var link *export.Node
	var find func(n *export.Node)
	find = func(n *export.Node) {
		if n.Type == "Link" {
			link = n
		}
		for _, c := range n.Children {
			find(c)
		}
	}
	find(&decoded)
	require.NotNil(t, link)
	assert.Equal(t, "https://example.com", link.URL)
	assert.Equal(t, "Example", link.Title)
}

func TestWrite_JSONCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse("# a <b>\n"), export.Options{Format: export.FormatJSON, Compact: true}))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "one line")
	assert.Contains(t, out, "a <b>", "HTML is not escaped")
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse("# Title\n"), export.Options{Format: export.FormatYAML}))

	assert.True(t, strings.HasPrefix(buf.String(), "type: Document\n"))

	var decoded export.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, "Heading", decoded.Children[0].Type)
	assert.Equal(t, 1, decoded.Children[0].Level)
}

func TestWrite_Markdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse(doc), export.Options{Format: export.FormatMarkdown}))
	assert.Equal(t, doc, buf.String())
}

func TestWrite_Tree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse("# Hi\n"), export.Options{}))

	out := buf.String()
	assert.Contains(t, out, "Document")
	assert.Contains(t, out, "Heading(1)")
	assert.Contains(t, out, "@1:1-")

	buf.Reset()
	require.NoError(t, export.Write(&buf, mark.Parse("# Hi\n"), export.Options{Format: export.FormatTree, Compact: true}))
	assert.NotContains(t, buf.String(), "@1:1-")
}

func TestWrite_Outline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, mark.Parse("# A\n\n## B\n"), export.Options{
		Format: export.FormatOutline,
		TOC:    export.TOCOptions{Links: true},
	}))
	assert.Equal(t, "- [A](#a)\n  - [B](#b)\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := export.Write(&bytes.Buffer{}, mark.Parse(""), export.Options{Format: "html"})
	require.Error(t, err)
}
