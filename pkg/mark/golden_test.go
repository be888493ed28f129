package mark_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/mdast"
)

func TestGoldenCorpus(t *testing.T) {
	t.Parallel()

	archive, err := txtar.ParseFile("testdata/roundtrip.txtar")
	require.NoError(t, err)

	outlines := make(map[string]string)
	for _, file := range archive.Files {
		if name, ok := strings.CutSuffix(file.Name, ".blocks"); ok {
			outlines[name] = string(file.Data)
		}
	}

	for _, file := range archive.Files {
		name, ok := strings.CutSuffix(file.Name, ".md")
		if !ok {
			continue
		}
		source := string(file.Data)

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := mark.Parse(source)
			assert.Equal(t, source, doc.Stringify())

			_, hasRaw := doc.Residue()
			assert.False(t, hasRaw, "unexpected raw residue")

			want, ok := outlines[name]
			if !ok {
				return
			}
			got := strings.Join(mdast.BlockOutline(mark.Lower(doc)), "\n") + "\n"
			assert.Equal(t, want, got)
		})
	}
}
