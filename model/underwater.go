package model

import (
	log "github.com/sirupsen/logrus"
)

// UnderwaterRobot is a Robot that can also change its depth. Depth is not
// bounded and has no effect on moves through the maze.
type UnderwaterRobot struct {
	*Robot
	depth int
}

func NewUnderwaterRobot(name, color string, depth int, opts ...Option) *UnderwaterRobot {
	return &UnderwaterRobot{
		Robot: NewRobot(name, color, opts...),
		depth: depth,
	}
}

func (u *UnderwaterRobot) Depth() int {
	return u.depth
}

// Dive goes down by squares, or up when squares is negative.
func (u *UnderwaterRobot) Dive(squares int) *UnderwaterRobot {
	u.depth += squares
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(u.fields()).WithField("depth", u.depth).Debugf("dive %d", squares)
	}
	return u
}

func (u *UnderwaterRobot) String() string {
	return u.name + " is a " + u.color + " robot diving underwater."
}
