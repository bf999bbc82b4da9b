package transcript

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader(""), &out)

	r.Output("The card:")
	r.Output("")

	assert.Equal(t, "The card:\n\n", out.String())
	assert.Equal(t, []string{"The card:", ""}, r.Lines())
}

func TestInput(t *testing.T) {
	r := New(strings.NewReader("add\r\nFrance\nParis"), io.Discard)

	for _, want := range []string{"add", "France", "Paris"} {
		line, err := r.Input()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.Input()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []string{"add", "France", "Paris"}, r.Lines())
}

func TestInputError(t *testing.T) {
	r := New(iotest.ErrReader(io.ErrUnexpectedEOF), io.Discard)

	_, err := r.Input()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
	assert.Empty(t, r.Lines())
}

func TestTranscriptOrder(t *testing.T) {
	r := New(strings.NewReader("France\n"), io.Discard)

	r.Output("The card:")
	_, err := r.Input()
	require.NoError(t, err)
	r.Output("done")

	assert.Equal(t, []string{"The card:", "France", "done"}, r.Lines())
}

func TestLinesIsCopy(t *testing.T) {
	r := New(strings.NewReader(""), io.Discard)
	r.Output("one")

	lines := r.Lines()
	lines[0] = "changed"

	assert.Equal(t, []string{"one"}, r.Lines())
}
