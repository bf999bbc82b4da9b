package sheet

import (
	"strings"
	"testing"

	"flashcards/pkg/meta"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	cards := []meta.Card{
		{Term: "Peru", Definition: "Lima", Mistakes: 1},
		{Term: "Japan", Definition: "Tokyo", Mistakes: 3},
		{Term: "France", Definition: "Paris", Mistakes: 1},
		{Term: "a|b", Definition: "x_y", Mistakes: 0},
	}

	assert.Equal(t, strings.Join([]string{
		"# Flashcards",
		"",
		"| Term | Definition | Mistakes |",
		"|------|------------|---------:|",
		"| Japan | Tokyo | 3 |",
		"| France | Paris | 1 |",
		"| Peru | Lima | 1 |",
		`| a\|b | x\_y | 0 |`,
		"",
	}, "\n"), string(Markdown(cards)))
}

func TestMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "# Flashcards\n\nNo cards.\n", string(Markdown(nil)))
}

func TestMarkdownKeepsInput(t *testing.T) {
	cards := []meta.Card{{Term: "b"}, {Term: "a", Mistakes: 2}}
	Markdown(cards)
	assert.Equal(t, "b", cards[0].Term)
}

func TestRender(t *testing.T) {
	page := string(Render([]meta.Card{{Term: "Japan", Definition: "<Tokyo>", Mistakes: 3}}))

	assert.Contains(t, page, "<title>Flashcards</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>Japan</td>")
	assert.NotContains(t, page, "<Tokyo>")
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Write(fs, "sheet.html", []meta.Card{{Term: "Japan", Definition: "Tokyo"}}))

	data, err := afero.ReadFile(fs, "sheet.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tokyo")
}

func TestWriteFailure(t *testing.T) {
	err := Write(afero.NewReadOnlyFs(afero.NewMemMapFs()), "sheet.html", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `write sheet "sheet.html"`)
}
