// Package sheet renders the card set as a standalone HTML study sheet.
package sheet

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"flashcards/pkg/meta"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const title = "Flashcards"

var cellEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`", `<`, "&lt;", `>`, "&gt;")

// Markdown lists the cards as a table, most mistakes first.
func Markdown(cards []meta.Card) []byte {
	sorted := append([]meta.Card(nil), cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Mistakes != sorted[j].Mistakes {
			return sorted[i].Mistakes > sorted[j].Mistakes
		}
		return sorted[i].Term < sorted[j].Term
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title)
	if len(sorted) == 0 {
		buf.WriteString("No cards.\n")
		return buf.Bytes()
	}
	buf.WriteString("| Term | Definition | Mistakes |\n")
	buf.WriteString("|------|------------|---------:|\n")
	for _, c := range sorted {
		fmt.Fprintf(&buf, "| %s | %s | %d |\n", cellEscaper.Replace(c.Term), cellEscaper.Replace(c.Definition), c.Mistakes)
	}
	return buf.Bytes()
}

// Render converts the Markdown table to a complete HTML page.
func Render(cards []meta.Card) []byte {
	htmlFlags := html.CommonFlags | html.CompletePage
	opts := html.RendererOptions{Flags: htmlFlags, Title: title}
	renderer := html.NewRenderer(opts)
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)

	return markdown.ToHTML(Markdown(cards), p, renderer)
}

func Write(fs afero.Fs, path string, cards []meta.Card) error {
	if err := afero.WriteFile(fs, path, Render(cards), 0644); err != nil {
		return errors.Wrapf(err, "write sheet %q", path)
	}
	return nil
}
