package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/zucenko/robomaze/model"
)

type Kind int

const (
	KindMove Kind = iota + 1
	KindRecharge
	KindDive
)

func (k Kind) Name() string {
	switch k {
	case KindMove:
		return "move"
	case KindRecharge:
		return "recharge"
	case KindDive:
		return "dive"
	default:
		return fmt.Sprintf("n/a:%d", int(k))
	}
}

// Action is a single command with repeats already unrolled.
type Action struct {
	Kind    Kind
	Dir     model.Direction
	Steps   int
	Squares int
	Pos     lexer.Position
}

var directions = map[string]model.Direction{
	"forward": model.Forward,
	"back":    model.Back,
	"right":   model.Right,
	"left":    model.Left,
}

// Actions flattens the script into the order the commands run in.
func (s *Script) Actions() []Action {
	return flatten(s.Commands, make([]Action, 0, len(s.Commands)))
}

func flatten(commands []*Command, actions []Action) []Action {
	for _, c := range commands {
		switch {
		case c.Repeat != nil:
			for i := 0; i < c.Repeat.Times; i++ {
				actions = flatten(c.Repeat.Body, actions)
			}
		case c.Move != nil:
			steps := 1
			if c.Move.Steps != nil {
				steps = *c.Move.Steps
			}
			actions = append(actions, Action{Kind: KindMove, Dir: directions[c.Move.Dir], Steps: steps, Pos: c.Pos})
		case c.Recharge:
			actions = append(actions, Action{Kind: KindRecharge, Pos: c.Pos})
		case c.Dive != nil:
			squares := c.Dive.Squares
			if c.Dive.Up {
				squares = -squares
			}
			actions = append(actions, Action{Kind: KindDive, Squares: squares, Pos: c.Pos})
		}
	}
	return actions
}

// Queue hands out the actions of a script one at a time, with multi step
// moves given out as single steps.
type Queue struct {
	actions []Action
}

func NewQueue(s *Script) *Queue {
	return &Queue{actions: s.Actions()}
}

// Next pops the next action. Moves come back with Steps set to 1.
func (q *Queue) Next() (Action, bool) {
	for len(q.actions) > 0 {
		a := q.actions[0]
		if a.Kind != KindMove {
			q.actions = q.actions[1:]
			return a, true
		}
		if a.Steps <= 0 {
			q.actions = q.actions[1:]
			continue
		}
		if a.Steps == 1 {
			q.actions = q.actions[1:]
		} else {
			q.actions[0].Steps--
		}
		a.Steps = 1
		return a, true
	}
	return Action{}, false
}

// Len is the number of actions not yet started.
func (q *Queue) Len() int {
	return len(q.actions)
}

// Clear drops every pending action.
func (q *Queue) Clear() {
	q.actions = nil
}

func (a Action) String() string {
	switch a.Kind {
	case KindMove:
		return fmt.Sprintf("%s %d", a.Dir.Name(), a.Steps)
	case KindDive:
		return fmt.Sprintf("dive %d", a.Squares)
	default:
		return a.Kind.Name()
	}
}
