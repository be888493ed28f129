package verify

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/mdparsec/pkg/mdast"
)

// contextLines is the number of context lines shown around a change.
const contextLines = 3

// Diff describes how two versions of a file differ.
type Diff struct {
	// Path is the file path used in the diff header.
	Path string

	// Line and Column locate the first differing character, 1-based.
	Line   int
	Column int

	// Unified is the diff in unified format, headers included.
	Unified string

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// NewDiff compares original with modified. It returns nil when they are equal.
func NewDiff(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	display := strings.TrimPrefix(path, "/")
	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + display,
		ToFile:   "b/" + display,
		Context:  contextLines,
	})
	if err != nil {
		unified = ""
	}

	line, column := firstDivergence(original, modified)
	diff := &Diff{
		Path:    path,
		Line:    line,
		Column:  column,
		Unified: unified,
	}
	inHunk := false
	for _, l := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(l, "@@"):
			inHunk = true
		case !inHunk:
		case strings.HasPrefix(l, "+"):
			diff.Additions++
		case strings.HasPrefix(l, "-"):
			diff.Deletions++
		}
	}
	return diff
}

// HasChanges reports whether the diff carries any change.
func (d *Diff) HasChanges() bool {
	return d != nil && d.Unified != ""
}

// Location returns the first divergence as "line:column".
func (d *Diff) Location() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", d.Line, d.Column)
}

// firstDivergence returns the 1-based line and column of the first rune
// where a and b differ. When one is a prefix of the other, that is the
// position just past the shorter one.
func firstDivergence(a, b string) (int, int) {
	line, column := 1, 1
	ra, rb := []rune(a), []rune(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			break
		}
		if ra[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// Mismatch is a run of block outline lines on which mdparsec and the
// reference parser disagree.
type Mismatch struct {
	// Line is the 1-based index into the reference outline where the run starts.
	Line int

	// Want holds the reference parser's outline lines.
	Want []string

	// Got holds mdparsec's outline lines.
	Got []string

	// SourceLine is the 1-based source line where the run starts, or 0
	// when it is not known.
	SourceLine int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("outline line %d: reference %s, mdparsec %s",
		m.Line, describeRun(m.Want), describeRun(m.Got))
}

func describeRun(lines []string) string {
	if len(lines) == 0 {
		return "(nothing)"
	}
	quoted := make([]string, len(lines))
	for i, l := range lines {
		quoted[i] = fmt.Sprintf("%q", strings.TrimSpace(l))
	}
	return strings.Join(quoted, ", ")
}

// CompareOutlines aligns two block outlines and returns every run where
// they differ. Equal outlines yield nil.
func CompareOutlines(want, got []string) []Mismatch {
	return compareOutlines(want, got, nil, nil)
}

// CompareTrees compares the block outlines of two trees. Mismatches carry
// the source line of the first block involved.
func CompareTrees(want, got *mdast.Node) []Mismatch {
	wantOutline, wantLines := mdast.BlockOutlineLines(want)
	gotOutline, gotLines := mdast.BlockOutlineLines(got)
	return compareOutlines(wantOutline, gotOutline, wantLines, gotLines)
}

func compareOutlines(want, got []string, wantLines, gotLines []int) []Mismatch {
	var out []Mismatch
	matcher := difflib.NewMatcher(want, got)
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		m := Mismatch{
			Line: op.I1 + 1,
			Want: want[op.I1:op.I2],
			Got:  got[op.J1:op.J2],
		}
		switch {
		case op.I1 < op.I2 && op.I1 < len(wantLines):
			m.SourceLine = wantLines[op.I1]
		case op.J1 < op.J2 && op.J1 < len(gotLines):
			m.SourceLine = gotLines[op.J1]
		}
		out = append(out, m)
	}
	return out
}
