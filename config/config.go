package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/robomaze/model"
)

// env var names
const (
	envName     = "ROBOT_NAME"
	envColor    = "ROBOT_COLOR"
	envKind     = "ROBOT_KIND"
	envRow      = "ROBOT_ROW"
	envColumn   = "ROBOT_COLUMN"
	envDepth    = "ROBOT_DEPTH"
	envUnitSize = "ROBOT_UNIT_SIZE"
	envScript   = "ROBOT_SCRIPT"
	envLogLevel = "LOG_LEVEL"
)

const (
	KindSurface    = "surface"
	KindUnderwater = "underwater"
)

// ErrInvalidStart is returned when the start cell is outside the maze or
// an obstacle.
var ErrInvalidStart = errors.New("invalid start cell")

type Config struct {
	Name     string
	Color    string
	Kind     string
	Row      int
	Column   int
	Depth    int
	UnitSize int
	Script   string
	LogLevel log.Level
}

// Load reads the configuration from environment variables, falling back to
// defaults for unset ones.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	c := &Config{
		Name:   stringOr(getenv, envName, "robbie"),
		Color:  stringOr(getenv, envColor, "blue"),
		Kind:   strings.ToLower(stringOr(getenv, envKind, KindSurface)),
		Script: getenv(envScript),
	}
	if c.Kind != KindSurface && c.Kind != KindUnderwater {
		return nil, fmt.Errorf("%s: unknown kind %q", envKind, c.Kind)
	}

	var err error
	if c.Row, err = intOr(getenv, envRow, 0); err != nil {
		return nil, err
	}
	if c.Column, err = intOr(getenv, envColumn, 0); err != nil {
		return nil, err
	}
	if c.Depth, err = intOr(getenv, envDepth, 0); err != nil {
		return nil, err
	}
	if c.UnitSize, err = intOr(getenv, envUnitSize, 60); err != nil {
		return nil, err
	}
	if c.UnitSize <= 0 {
		return nil, fmt.Errorf("%s: must be positive, got %d", envUnitSize, c.UnitSize)
	}
	if c.LogLevel, err = log.ParseLevel(stringOr(getenv, envLogLevel, "info")); err != nil {
		return nil, fmt.Errorf("%s: %w", envLogLevel, err)
	}
	if !model.DefaultMaze().IsOpen(c.Row, c.Column) {
		return nil, fmt.Errorf("%w: row %d column %d", ErrInvalidStart, c.Row, c.Column)
	}
	return c, nil
}

// NewRobot builds the configured robot. For the underwater kind the second
// result wraps the first one; otherwise it is nil.
func (c *Config) NewRobot() (*model.Robot, *model.UnderwaterRobot) {
	if c.Kind == KindUnderwater {
		u := model.NewUnderwaterRobot(c.Name, c.Color, c.Depth, model.At(c.Row, c.Column))
		return u.Robot, u
	}
	return model.NewRobot(c.Name, c.Color, model.At(c.Row, c.Column)), nil
}

func stringOr(getenv func(string) string, envVar, def string) string {
	entry := getenv(envVar)
	if entry == "" {
		log.Infof("%s not set, defaulting to %s", envVar, def)
		return def
	}
	log.Debug(envVar+": ", entry)
	return entry
}

func intOr(getenv func(string) string, envVar string, def int) (int, error) {
	entry := getenv(envVar)
	if entry == "" {
		return def, nil
	}
	n, err := strconv.Atoi(entry)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", envVar, err)
	}
	return n, nil
}
