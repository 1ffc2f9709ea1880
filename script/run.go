package script

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/robomaze/model"
)

// ErrCannotDive is returned when a dive command reaches a surface robot.
var ErrCannotDive = errors.New("robot cannot dive")

// Target is the robot a script drives.
type Target interface {
	Step(d model.Direction) model.MoveResult
	Recharge() *model.Robot
}

// Diver is a Target that can change depth.
type Diver interface {
	Dive(squares int) *model.UnderwaterRobot
}

// Report sums up what a run did.
type Report struct {
	Moved     int
	Rejected  map[model.MoveResult]int
	Recharges int
	Dives     int
}

// NewReport returns an empty report.
func NewReport() Report {
	return Report{Rejected: make(map[model.MoveResult]int)}
}

// Apply runs one action against t and records the outcome in rep. A
// rejected step leaves the robot unchanged, so the remaining steps of the
// same move are counted with the same result without being tried.
func (a Action) Apply(t Target, rep *Report) error {
	switch a.Kind {
	case KindMove:
		for i := 0; i < a.Steps; i++ {
			result := t.Step(a.Dir)
			if result != model.Moved {
				rep.Rejected[result] += a.Steps - i
				break
			}
			rep.Moved++
		}
	case KindRecharge:
		t.Recharge()
		rep.Recharges++
	case KindDive:
		d, ok := t.(Diver)
		if !ok {
			return fmt.Errorf("%s: %w", a.Pos, ErrCannotDive)
		}
		d.Dive(a.Squares)
		rep.Dives++
	default:
		return fmt.Errorf("%s: unknown action %s", a.Pos, a.Kind.Name())
	}
	return nil
}

// Run executes every action in order and stops at the first error.
func (s *Script) Run(t Target) (Report, error) {
	rep := NewReport()
	for _, a := range s.Actions() {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithField("action", a.String()).Debug("script")
		}
		if err := a.Apply(t, &rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// Rejections is the number of steps that were not committed.
func (r Report) Rejections() int {
	total := 0
	for _, n := range r.Rejected {
		total += n
	}
	return total
}
