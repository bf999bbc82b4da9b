package meta

import (
	"bufio"
	"bytes"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// linesPerCard is the record size of the card file: term, definition, mistakes.
const linesPerCard = 3

// ErrNotFound is returned by LoadCards when the card file does not exist.
var ErrNotFound = errors.New("not found")

type Storage interface {
	LoadCards(path string) ([]*Card, error)
	SaveCards(path string, cards []*Card) error
	SaveLines(path string, lines []string) error
}

type StorageImpl struct {
	fs afero.Fs
}

func New(fs afero.Fs) *StorageImpl {
	return &StorageImpl{fs}
}

// LoadCards reads every complete three-line record of the file in order.
// A trailing partial record is ignored.
func (s *StorageImpl) LoadCards(path string) ([]*Card, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read card file %q", path)
	}

	lines, err := splitLines(data)
	if err != nil {
		return nil, errors.Wrapf(err, "split card file %q", path)
	}

	cards := make([]*Card, 0, len(lines)/linesPerCard)
	for i := 0; i+linesPerCard <= len(lines); i += linesPerCard {
		mistakes, err := strconv.Atoi(lines[i+2])
		if err != nil {
			return nil, errors.Wrapf(err, "parse mistakes of card %q on line %d", lines[i], i+3)
		}
		if mistakes < 0 {
			return nil, errors.Errorf("negative mistakes of card %q on line %d", lines[i], i+3)
		}
		cards = append(cards, &Card{
			Term:       lines[i],
			Definition: lines[i+1],
			Mistakes:   mistakes,
		})
	}
	return cards, nil
}

func (s *StorageImpl) SaveCards(path string, cards []*Card) error {
	lines := make([]string, 0, len(cards)*linesPerCard)
	for _, c := range cards {
		lines = append(lines, c.Term, c.Definition, strconv.Itoa(c.Mistakes))
	}
	if err := s.SaveLines(path, lines); err != nil {
		return errors.Wrap(err, "save cards")
	}
	return nil
}

// SaveLines overwrites the file with one line per element.
func (s *StorageImpl) SaveLines(path string, lines []string) error {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}

func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
