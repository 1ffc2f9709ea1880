package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed list of robot commands, for example
//
//	forward 3; left; recharge;
//	repeat 2 { right 2; dive -1; }
type Script struct {
	Commands []*Command `parser:"@@*"`
}

type Command struct {
	Pos lexer.Position

	Repeat   *Repeat `parser:"  @@"`
	Move     *Move   `parser:"| @@ ';'"`
	Recharge bool    `parser:"| @'recharge' ';'"`
	Dive     *Dive   `parser:"| @@ ';'"`
}

type Repeat struct {
	Times int        `parser:"'repeat' @Int"`
	Body  []*Command `parser:"'{' @@* '}'"`
}

type Move struct {
	Dir   string `parser:"@('forward'|'back'|'right'|'left')"`
	Steps *int   `parser:"@Int?"`
}

type Dive struct {
	Up      bool `parser:"'dive' @'-'?"`
	Squares int  `parser:"@Int"`
}

var parser = participle.MustBuild[Script]()

const (
	// MaxCount bounds every repeat count and move step count.
	MaxCount = 1000
	// MaxActions bounds the number of actions a script unrolls to.
	MaxActions = 100000
)

// ErrTooLarge is returned for scripts over MaxCount or MaxActions.
var ErrTooLarge = errors.New("script too large")

// Parse reads a script; name is only used in error messages.
func Parse(name, src string) (*Script, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if _, err := size(s.Commands); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

// size counts the actions commands unroll to, failing as soon as a count
// or the running total goes over its limit.
func size(commands []*Command) (int, error) {
	total := 0
	for _, c := range commands {
		n := 1
		switch {
		case c.Repeat != nil:
			if c.Repeat.Times > MaxCount {
				return 0, fmt.Errorf("%s: %w: repeat %d over %d", c.Pos, ErrTooLarge, c.Repeat.Times, MaxCount)
			}
			body, err := size(c.Repeat.Body)
			if err != nil {
				return 0, err
			}
			n = c.Repeat.Times * body
		case c.Move != nil && c.Move.Steps != nil:
			if *c.Move.Steps > MaxCount {
				return 0, fmt.Errorf("%s: %w: %s %d over %d", c.Pos, ErrTooLarge, c.Move.Dir, *c.Move.Steps, MaxCount)
			}
		}
		total += n
		if total > MaxActions {
			return 0, fmt.Errorf("%s: %w: more than %d actions", c.Pos, ErrTooLarge, MaxActions)
		}
	}
	return total, nil
}

// ParseFile reads and parses the script stored at path.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(path, string(data))
}
