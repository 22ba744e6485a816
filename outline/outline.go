// Package outline builds a heading outline from a notebook's markup cells.
//
// Hosts use the outline for navigation: each heading records the index of
// the cell it came from. Code cells are never parsed.
package outline

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/zoobzio/folio"
)

// Heading is one markdown heading found in a markup cell.
type Heading struct {
	Cell  int    // Index of the cell in the notebook
	Level int    // 1 through 6
	Title string // Plain text, inline markup removed
}

// The parser configuration never changes and goldmark parsers are safe to
// share; parsing creates per-call state.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// Build returns the headings of every markup cell in document order.
func Build(nb *folio.Notebook) []Heading {
	if nb == nil {
		return nil
	}

	var headings []Heading
	for i, cell := range nb.Cells {
		if cell.Kind != folio.KindMarkup {
			continue
		}
		headings = append(headings, cellHeadings(i, cell.Content)...)
	}
	return headings
}

func cellHeadings(index int, content string) []Heading {
	if content == "" {
		return nil
	}

	source := []byte(content)
	document := markdown().Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Cell:  index,
			Level: heading.Level,
			Title: plainText(heading, source),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// plainText concatenates the text segments under node.
func plainText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
