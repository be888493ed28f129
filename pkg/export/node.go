package export

import "github.com/yaklabco/mdparsec/pkg/mdast"

// Node is the serialised form of an mdast node.
type Node struct {
	Type     string    `json:"type" yaml:"type"`
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"`

	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	Ordered bool   `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Start   int    `json:"start,omitempty" yaml:"start,omitempty"`
	Bullet  string `json:"bullet,omitempty" yaml:"bullet,omitempty"`
	Tight   bool   `json:"tight,omitempty" yaml:"tight,omitempty"`
	Checked *bool  `json:"checked,omitempty" yaml:"checked,omitempty"`

	Info     string `json:"info,omitempty" yaml:"info,omitempty"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Detected bool   `json:"detected,omitempty" yaml:"detected,omitempty"`

	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	Align []string `json:"align,omitempty" yaml:"align,omitempty"`

	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Position is a 1-based source range with an exclusive end.
type Position struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Point is a 1-based line and column.
type Point struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// FromMdast converts the tree rooted at n.
func FromMdast(n *mdast.Node) *Node {
	if n == nil {
		return nil
	}

	out := &Node{Type: n.Kind.String()}
	if n.Pos.IsValid() {
		out.Position = &Position{
			Start: Point{Line: n.Pos.StartLine, Column: n.Pos.StartColumn},
			End:   Point{Line: n.Pos.EndLine, Column: n.Pos.EndColumn},
		}
	}

	if b := n.Block; b != nil {
		out.Level = b.HeadingLevel
		if l := b.List; l != nil {
			out.Ordered = l.Ordered
			out.Tight = l.Tight
			if l.Ordered {
				out.Start = l.StartNumber
			} else {
				out.Bullet = l.BulletMarker
			}
		}
		if b.Task != nil {
			checked := b.Task.Checked
			out.Checked = &checked
		}
		if c := b.CodeBlock; c != nil {
			out.Info = c.Info
			out.Language = c.Language
			out.Detected = c.Detected
		}
		if b.Table != nil {
			out.Align = b.Table.Alignments
		}
	}

	if in := n.Inline; in != nil {
		out.Value = string(in.Text)
		if in.Link != nil {
			out.URL = in.Link.Destination
			out.Title = in.Link.Title
		}
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		out.Children = append(out.Children, FromMdast(child))
	}
	return out
}
