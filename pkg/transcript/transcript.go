// Package transcript mediates console input and output and keeps every line
// shown to or typed by the user, in order.
package transcript

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type Recorder struct {
	in    *bufio.Reader
	out   io.Writer
	lines []string
}

func New(in io.Reader, out io.Writer) *Recorder {
	return &Recorder{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Output displays the line and appends it to the transcript.
func (r *Recorder) Output(line string) {
	fmt.Fprintln(r.out, line)
	r.lines = append(r.lines, line)
}

// Input blocks for one line of input, appends it to the transcript and returns
// it without the line terminator. It returns io.EOF once the input is drained.
func (r *Recorder) Input() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, "read input")
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	r.lines = append(r.lines, line)
	return line, nil
}

// Lines returns a copy of the transcript.
func (r *Recorder) Lines() []string {
	return append([]string(nil), r.lines...)
}
