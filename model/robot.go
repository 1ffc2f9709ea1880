package model

import (
	log "github.com/sirupsen/logrus"
)

// Full is the battery of a freshly charged robot, one unit per step.
const Full = 20

// Robot moves through a maze spending battery on every committed step.
// A Robot is not safe for concurrent use.
type Robot struct {
	name    string
	color   string
	row     int
	col     int
	battery int
	maze    *Maze
}

// Option adjusts a robot at construction.
type Option func(r *Robot)

// At places the robot on a start cell. Without it the robot starts at 0,0.
func At(row, col int) Option {
	return func(r *Robot) {
		r.row = row
		r.col = col
	}
}

// InMaze lets the robot move through m instead of the default maze.
func InMaze(m *Maze) Option {
	return func(r *Robot) {
		r.maze = m
	}
}

// NewRobot creates a fully charged robot.
func NewRobot(name, color string, opts ...Option) *Robot {
	r := &Robot{
		name:  name,
		color: color,
		maze:  DefaultMaze(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.Recharge()
}

func (r *Robot) Name() string  { return r.name }
func (r *Robot) Color() string { return r.color }
func (r *Robot) Row() int      { return r.row }
func (r *Robot) Column() int   { return r.col }
func (r *Robot) Battery() int  { return r.battery }
func (r *Robot) Maze() *Maze   { return r.maze }

// Depleted reports whether the battery is empty.
func (r *Robot) Depleted() bool {
	return r.battery == 0
}

// Recharge fills the battery.
func (r *Robot) Recharge() *Robot {
	r.battery = Full
	return r
}

// Step tries to move one cell in direction d. The step is committed only if
// the target cell is inside the maze, is not an obstacle and the battery is
// not empty; otherwise the robot is left untouched.
func (r *Robot) Step(d Direction) MoveResult {
	dr, dc := d.Delta()
	nextRow, nextCol := r.row+dr, r.col+dc

	result := Moved
	switch {
	case !r.maze.InBounds(nextRow, nextCol):
		result = OutOfBounds
	case !r.maze.IsOpen(nextRow, nextCol):
		result = Blocked
	case r.battery <= 0:
		result = Depleted
	}
	if result != Moved {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithFields(r.fields()).Debugf("%s rejected: %s", d.Name(), result.Name())
		}
		return result
	}

	r.row, r.col = nextRow, nextCol
	r.battery--
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(r.fields()).Debugf("%s", d.Name())
	}
	return Moved
}

// Move repeats Step up to steps times and returns how many were committed.
// Every step is checked on its own, so a robot may stop partway.
func (r *Robot) Move(d Direction, steps int) int {
	moved := 0
	for i := 0; i < steps; i++ {
		if r.Step(d) == Moved {
			moved++
		}
	}
	return moved
}

func (r *Robot) OneStepForward() *Robot {
	r.Step(Forward)
	return r
}

func (r *Robot) OneStepBack() *Robot {
	r.Step(Back)
	return r
}

func (r *Robot) OneStepRight() *Robot {
	r.Step(Right)
	return r
}

func (r *Robot) OneStepLeft() *Robot {
	r.Step(Left)
	return r
}

func (r *Robot) Forward(steps int) *Robot {
	r.Move(Forward, steps)
	return r
}

func (r *Robot) Backward(steps int) *Robot {
	r.Move(Back, steps)
	return r
}

func (r *Robot) Right(steps int) *Robot {
	r.Move(Right, steps)
	return r
}

func (r *Robot) Left(steps int) *Robot {
	r.Move(Left, steps)
	return r
}

// MoreCharged reports whether r has more battery left than other.
func (r *Robot) MoreCharged(other *Robot) bool {
	return r.battery > other.battery
}

// MostCharged returns the first robot none of the others is more charged
// than, or nil when called without robots.
func MostCharged(robots ...*Robot) *Robot {
	var best *Robot
	for _, r := range robots {
		if best == nil || r.MoreCharged(best) {
			best = r
		}
	}
	return best
}

func (r *Robot) String() string {
	return r.name + " is a " + r.color + " robot lost in the maze."
}

func (r *Robot) fields() log.Fields {
	return log.Fields{
		"name":    r.name,
		"row":     r.row,
		"column":  r.col,
		"battery": r.battery,
	}
}
