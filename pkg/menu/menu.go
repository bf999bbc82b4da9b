package menu

import (
	"io"
	"strings"

	"flashcards/pkg/core"

	"github.com/pkg/errors"
)

type Command int

const (
	Unknown Command = iota
	Add
	Remove
	Import
	Export
	Ask
	Exit
	Log
	Hardest
	Reset
)

// commands lists the menu in the order it is shown to the user.
var commands = []Command{Add, Remove, Import, Export, Ask, Exit, Log, Hardest, Reset}

var names = map[Command]string{
	Add:     "add",
	Remove:  "remove",
	Import:  "import",
	Export:  "export",
	Ask:     "ask",
	Exit:    "exit",
	Log:     "log",
	Hardest: "hardest card",
	Reset:   "reset stats",
}

func (c Command) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Parse matches the line exactly against the command names.
func Parse(line string) Command {
	for _, c := range commands {
		if names[c] == line {
			return c
		}
	}
	return Unknown
}

// Prompt is the line asking for the next action.
func Prompt() string {
	items := make([]string, 0, len(commands))
	for _, c := range commands {
		items = append(items, c.String())
	}
	return "Input the action (" + strings.Join(items, ", ") + "):"
}

type Menu struct {
	console core.Console
	core    core.Core
}

func New(console core.Console, core core.Core) *Menu {
	return &Menu{console, core}
}

// Run reads and executes commands until exit or the end of input.
func (m *Menu) Run() error {
	for {
		m.console.Output(Prompt())
		line, err := m.console.Input()
		if err != nil {
			if errors.Cause(err) != io.EOF {
				return errors.Wrap(err, "read action")
			}
			m.core.Exit()
			break
		}

		cmd := Parse(line)
		if cmd == Exit {
			m.core.Exit()
			break
		}
		if err := m.dispatch(cmd); err != nil {
			if errors.Cause(err) != io.EOF {
				return errors.Wrapf(err, "run %q", cmd)
			}
			m.core.Exit()
			break
		}
		m.console.Output("")
	}
	m.console.Output("Bye bye!")
	return nil
}

func (m *Menu) dispatch(cmd Command) error {
	switch cmd {
	case Add:
		return m.core.Add()
	case Remove:
		return m.core.Remove()
	case Import:
		return m.core.Import()
	case Export:
		return m.core.Export()
	case Ask:
		return m.core.Ask()
	case Log:
		return m.core.Log()
	case Hardest:
		m.core.HardestCard()
	case Reset:
		m.core.ResetStats()
	case Exit, Unknown:
	}
	return nil
}
