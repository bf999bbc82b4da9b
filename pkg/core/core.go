package core

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"flashcards/pkg/meta"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidCount is returned when the number of quiz rounds is not a
// non-negative integer.
var ErrInvalidCount = errors.New("invalid count")

// Console is the transcript-recording terminal the store talks through.
type Console interface {
	Output(line string)
	Input() (string, error)
	Lines() []string
}

// Core is the card store. Operations report their outcome to the console and
// return an error only when the console itself fails.
type Core interface {
	Load(path string)
	Add() error
	Remove() error
	Import() error
	Export() error
	Ask() error
	Log() error
	HardestCard()
	ResetStats()
	Exit()
	Cards() []meta.Card
}

type Option func(*CoreImpl)

// WithExportPath sets the file the cards are saved to on Exit.
func WithExportPath(path string) Option {
	return func(c *CoreImpl) {
		c.exportPath = path
	}
}

// WithPicker replaces the uniform random choice of the next quiz card.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(c *CoreImpl) {
		c.pick = pick
	}
}

type CoreImpl struct {
	console Console
	storage meta.Storage
	logger  *zap.Logger

	pick       func(n int) int
	exportPath string

	cards []*meta.Card
	// position of each term in cards
	index map[string]int
}

func New(console Console, storage meta.Storage, logger *zap.Logger, opts ...Option) *CoreImpl {
	c := &CoreImpl{
		console: console,
		storage: storage,
		logger:  logger,
		pick:    rand.Intn,
		index:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Cards returns a snapshot of the store in iteration order.
func (c *CoreImpl) Cards() []meta.Card {
	res := make([]meta.Card, 0, len(c.cards))
	for _, card := range c.cards {
		res = append(res, *card)
	}
	return res
}

func (c *CoreImpl) Add() error {
	c.console.Output("The card:")
	term, err := c.console.Input()
	if err != nil {
		return errors.Wrap(err, "read term")
	}
	if _, exists := c.index[term]; exists {
		c.console.Output(fmt.Sprintf("The card %q already exists.", term))
		return nil
	}

	c.console.Output("The definition of the card:")
	definition, err := c.console.Input()
	if err != nil {
		return errors.Wrap(err, "read definition")
	}
	if c.findByDefinition(definition) != nil {
		c.console.Output(fmt.Sprintf("The definition %q already exists.", definition))
		return nil
	}

	c.insert(&meta.Card{Term: term, Definition: definition})
	c.console.Output(fmt.Sprintf("The pair (%q:%q) has been added.", term, definition))
	return nil
}

func (c *CoreImpl) Remove() error {
	c.console.Output("Which card?")
	term, err := c.console.Input()
	if err != nil {
		return errors.Wrap(err, "read term")
	}
	if !c.delete(term) {
		c.console.Output(fmt.Sprintf("Can't remove %q: there is no such card.", term))
		return nil
	}
	c.console.Output("The card has been removed.")
	return nil
}

func (c *CoreImpl) Import() error {
	path, err := c.readFileName()
	if err != nil {
		return err
	}
	c.Load(path)
	return nil
}

// Load upserts every card of the file keyed on term. Nothing is applied when
// the file cannot be parsed.
func (c *CoreImpl) Load(path string) {
	cards, err := c.storage.LoadCards(path)
	if err != nil {
		if errors.Cause(err) == meta.ErrNotFound {
			c.logger.Info("card file not found", zap.String("path", path))
			c.console.Output("File not found.")
			return
		}
		c.logger.Error("failed to load cards", zap.String("path", path), zap.Error(err))
		c.console.Output(fmt.Sprintf("Cannot load %q: %v.", path, err))
		return
	}

	for _, card := range cards {
		c.delete(card.Term)
		c.insert(card)
	}
	c.logger.Info("cards loaded", zap.String("path", path), zap.Int("cards", len(cards)))
	c.console.Output(fmt.Sprintf("%d cards have been loaded.", len(cards)))
}

func (c *CoreImpl) Export() error {
	path, err := c.readFileName()
	if err != nil {
		return err
	}
	c.save(path)
	return nil
}

func (c *CoreImpl) save(path string) {
	if err := c.storage.SaveCards(path, c.cards); err != nil {
		c.logger.Error("failed to save cards", zap.String("path", path), zap.Error(err))
		c.console.Output(fmt.Sprintf("Cannot save %q: %v.", path, err))
		return
	}
	c.logger.Info("cards saved", zap.String("path", path), zap.Int("cards", len(c.cards)))
	c.console.Output(fmt.Sprintf("%d cards have been saved.", len(c.cards)))
}

func (c *CoreImpl) Ask() error {
	c.console.Output("How many times to ask?")
	text, err := c.console.Input()
	if err != nil {
		return errors.Wrap(err, "read count")
	}
	n, err := parseCount(text)
	if err != nil {
		c.console.Output(fmt.Sprintf("Invalid number %q.", text))
		return nil
	}
	if n > 0 && len(c.cards) == 0 {
		c.console.Output("There are no cards.")
		return nil
	}

	for i := 0; i < n; i++ {
		if err := c.askOne(); err != nil {
			return errors.Wrapf(err, "ask round %d", i+1)
		}
	}
	return nil
}

func (c *CoreImpl) askOne() error {
	card := c.cards[c.pick(len(c.cards))]
	c.console.Output(fmt.Sprintf("Print the definition of %q:", card.Term))
	answer, err := c.console.Input()
	if err != nil {
		return errors.Wrap(err, "read answer")
	}
	if answer == card.Definition {
		c.console.Output("Correct!")
		return nil
	}

	card.Mistakes++
	msg := fmt.Sprintf("Wrong. The right answer is %q", card.Definition)
	if other := c.findByDefinition(answer); other != nil {
		msg += fmt.Sprintf(", but your definition is correct for %q", other.Term)
	}
	c.console.Output(msg + ".")
	return nil
}

func parseCount(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrInvalidCount, "parse %q", text)
	}
	return n, nil
}

func (c *CoreImpl) Log() error {
	path, err := c.readFileName()
	if err != nil {
		return err
	}
	if err := c.storage.SaveLines(path, c.console.Lines()); err != nil {
		c.logger.Error("failed to save log", zap.String("path", path), zap.Error(err))
		c.console.Output(fmt.Sprintf("Cannot save %q: %v.", path, err))
		return nil
	}
	c.console.Output("The log has been saved.")
	return nil
}

func (c *CoreImpl) HardestCard() {
	hardest, top := c.hardest()
	switch len(hardest) {
	case 0:
		c.console.Output("There are no cards with errors.")
	case 1:
		c.console.Output(fmt.Sprintf("The hardest card is %q. You have %d errors answering it.", hardest[0].Term, top))
	default:
		terms := make([]string, 0, len(hardest))
		for _, card := range hardest {
			terms = append(terms, strconv.Quote(card.Term))
		}
		c.console.Output(fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.", strings.Join(terms, ", "), top))
	}
}

// hardest returns every card with the highest nonzero mistake count.
func (c *CoreImpl) hardest() ([]*meta.Card, int) {
	top := 0
	for _, card := range c.cards {
		if card.Mistakes > top {
			top = card.Mistakes
		}
	}
	if top == 0 {
		return nil, 0
	}

	var res []*meta.Card
	for _, card := range c.cards {
		if card.Mistakes == top {
			res = append(res, card)
		}
	}
	return res, top
}

func (c *CoreImpl) ResetStats() {
	for _, card := range c.cards {
		card.Mistakes = 0
	}
	c.console.Output("Card statistics have been reset.")
}

// Exit saves the cards to the export path, if one was configured.
func (c *CoreImpl) Exit() {
	if c.exportPath != "" {
		c.save(c.exportPath)
	}
}

func (c *CoreImpl) readFileName() (string, error) {
	c.console.Output("File name:")
	path, err := c.console.Input()
	if err != nil {
		return "", errors.Wrap(err, "read file name")
	}
	return path, nil
}

func (c *CoreImpl) insert(card *meta.Card) {
	c.index[card.Term] = len(c.cards)
	c.cards = append(c.cards, card)
}

func (c *CoreImpl) delete(term string) bool {
	pos, ok := c.index[term]
	if !ok {
		return false
	}
	c.cards = append(c.cards[:pos], c.cards[pos+1:]...)
	delete(c.index, term)
	for i := pos; i < len(c.cards); i++ {
		c.index[c.cards[i].Term] = i
	}
	return true
}

func (c *CoreImpl) findByDefinition(definition string) *meta.Card {
	for _, card := range c.cards {
		if card.Definition == definition {
			return card
		}
	}
	return nil
}
