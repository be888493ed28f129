// Package export writes parsed Markdown documents as a terminal tree,
// JSON, YAML, Markdown or a heading outline.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdparsec/pkg/langdetect"
	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/prettytree"
)

// bufWriterSize is the buffer size for output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options control Write.
type Options struct {
	Format Format

	// Compact drops JSON indentation and tree spans.
	Compact bool

	// Color styles the tree with ANSI colours.
	Color bool

	// ValueWidth caps the width of values in the tree. Zero means no cap.
	ValueWidth int

	// DetectLanguages guesses the language of unlabelled code blocks in
	// JSON and YAML output.
	DetectLanguages bool

	// TOC configures the outline format.
	TOC TOCOptions
}

// Write writes doc to w in the selected format.
func Write(w io.Writer, doc mark.Document, opts Options) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	format := opts.Format
	if format == "" {
		format = FormatTree
	}

	switch format {
	case FormatTree:
		return writeTree(bw, doc, opts)
	case FormatJSON:
		return writeJSON(bw, doc, opts)
	case FormatYAML:
		return writeYAML(bw, doc, opts)
	case FormatMarkdown:
		_, err = bw.WriteString(doc.Stringify())
		return err
	case FormatOutline:
		_, err = bw.WriteString(TOC(mark.Outline(doc), opts.TOC))
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Tree returns the serialisable tree of doc.
func Tree(doc mark.Document, detectLanguages bool) *Node {
	root := mark.Lower(doc)
	if detectLanguages {
		langdetect.Annotate(root)
	}
	return FromMdast(root)
}

func writeTree(w io.Writer, doc mark.Document, opts Options) error {
	styles := prettytree.PlainStyles()
	if opts.Color {
		styles = prettytree.ColorStyles()
	}
	rendered := prettytree.Render(prettytree.FromDocument(doc), prettytree.Options{
		Styles:     styles,
		ValueWidth: opts.ValueWidth,
		ShowSpans:  !opts.Compact,
	})
	_, err := io.WriteString(w, rendered)
	return err
}

func writeJSON(w io.Writer, doc mark.Document, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(Tree(doc, opts.DetectLanguages)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc mark.Document, opts Options) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(Tree(doc, opts.DetectLanguages)); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close YAML encoder: %w", err)
	}
	return nil
}
