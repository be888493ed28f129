package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdparsec/internal/ui/pretty"
	"github.com/yaklabco/mdparsec/pkg/analysis"
)

func TestFormatFinding_Basic(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	finding := &analysis.Finding{
		FilePath: "test.md",
		Kind:     analysis.KindRoundTrip,
		Severity: analysis.SeverityError,
		Message:  "document does not reproduce its source",
		Line:     10,
		Column:   1,
	}

	result := styles.FormatFinding(finding, false, "")

	assert.Contains(t, result, "test.md:10:1")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "document does not reproduce its source")
	assert.Contains(t, result, "(round-trip)")
}

func TestFormatFinding_NoLocation(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	finding := &analysis.Finding{
		FilePath: "test.md",
		Kind:     analysis.KindResidue,
		Severity: analysis.SeverityInfo,
		Message:  "3 characters kept as residue",
	}

	result := styles.FormatFinding(finding, true, "ignored")

	assert.Contains(t, result, "  test.md  info  ")
	assert.NotContains(t, result, "test.md:")
	assert.NotContains(t, result, "^")
}

func TestFormatFinding_WithContext(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	finding := &analysis.Finding{
		FilePath: "test.md",
		Kind:     analysis.KindUnformatted,
		Severity: analysis.SeverityWarning,
		Message:  "file is not formatted (+1 -1)",
		Line:     5,
		Column:   3,
	}

	result := styles.FormatFinding(finding, true, "##Heading")
	lines := strings.Split(result, "\n")

	assert.Contains(t, result, "##Heading")
	assert.Equal(t, "          ^", lines[2], "caret under column 3")
}

func TestFormatFinding_Mismatch(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	finding := &analysis.Finding{
		FilePath: "test.md",
		Kind:     analysis.KindMismatch,
		Severity: analysis.SeverityError,
		Message:  "outline line 2",
		Line:     4,
		Want:     []string{"Paragraph", "  Text"},
	}

	result := styles.FormatFinding(finding, false, "")

	assert.Contains(t, result, "    reference: Paragraph\n")
	assert.Contains(t, result, "                 Text\n")
	assert.Contains(t, result, "    mdparsec : (nothing)\n")
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity string
		want     string
	}{
		{analysis.SeverityError, "error"},
		{analysis.SeverityWarning, "warning"},
		{analysis.SeverityInfo, "info"},
		{"custom", "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSeverity(tt.severity))
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()
	styles := pretty.NewStyles(false)

	assert.Equal(t, "doc.md", styles.FormatFileHeader("doc.md", 0))
	assert.Equal(t, "doc.md (1 finding)", styles.FormatFileHeader("doc.md", 1))
	assert.Equal(t, "doc.md (4 findings)", styles.FormatFileHeader("doc.md", 4))
}
