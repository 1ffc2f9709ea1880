package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/robomaze/model"
	"golang.org/x/image/colornames"
)

func TestUprightRobot(t *testing.T) {
	r := model.NewRobot("wall-e", "purple", model.At(2, 3))
	f := NewFrame(r, 60)

	assert.Equal(t, "wall-e in the Maze", f.Title)
	assert.Equal(t, "wall-e battery 20/20", f.Status)
	assert.Equal(t, 600, f.Size)
	assert.True(t, f.Upright)
	assert.Equal(t, Rect{X: 195, Y: 120, W: 30, H: 60, Color: colornames.Purple}, f.Body)
	assert.InDelta(t, 201, f.Eyes[0].X, 1e-9)
	assert.InDelta(t, 126, f.Eyes[0].Y, 1e-9)
	assert.InDelta(t, 216, f.Eyes[1].X, 1e-9)
	assert.InDelta(t, 126, f.Eyes[1].Y, 1e-9)
	assert.InDelta(t, 3, f.Eyes[1].W, 1e-9)
}

func TestDepletedRobotLiesDown(t *testing.T) {
	r := model.NewRobot("wall-e", "purple", model.At(5, 0))
	r.Right(9).Left(9).Right(2)
	require.True(t, r.Depleted())

	f := NewFrame(r, 60)
	assert.False(t, f.Upright)
	assert.Equal(t, Rect{X: 120, Y: 330, W: 60, H: 30, Color: colornames.Purple}, f.Body)
	assert.InDelta(t, 126, f.Eyes[1].X, 1e-9)
	assert.InDelta(t, 351, f.Eyes[1].Y, 1e-9)
}

func TestMazeLayout(t *testing.T) {
	f := NewFrame(model.NewRobot("wall-e", "red"), 10)
	assert.Len(t, f.Obstacles, len(model.DefaultMaze().Obstacles()))
	assert.Equal(t, Rect{X: 20, Y: 0, W: 10, H: 10, Color: ColorObstacle}, f.Obstacles[0])
	assert.Len(t, f.Grid, 2*model.Size)
	assert.Equal(t, Line{X1: 0, Y1: 10, X2: 100, Y2: 10}, f.Grid[2])
	assert.Equal(t, ColorBackground, f.Background)
}

func TestUnderwaterStatus(t *testing.T) {
	u := model.NewUnderwaterRobot("nemo", "orange", 0).Dive(3)
	f := NewFrame(u, 60)
	assert.Equal(t, "nemo battery 20/20 depth 3", f.Status)
}

func TestShift(t *testing.T) {
	f := NewFrame(model.NewRobot("wall-e", "red"), 60)
	moved := f.Shift(-60, 30)
	assert.Equal(t, f.Body.X-60, moved.Body.X)
	assert.Equal(t, f.Body.Y+30, moved.Body.Y)
	assert.Equal(t, f.Eyes[1].X-60, moved.Eyes[1].X)
	assert.Equal(t, f.Obstacles, moved.Obstacles)
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("light green")
	assert.True(t, ok)
	assert.Equal(t, colornames.Lightgreen, c)

	c, ok = ColorByName("Purple")
	assert.True(t, ok)
	assert.Equal(t, colornames.Purple, c)

	c, ok = ColorByName("#fa3636")
	assert.True(t, ok)
	assert.Equal(t, HexToRGBA(0xfa3636), c)

	c, ok = ColorByName("octarine")
	assert.False(t, ok)
	assert.Equal(t, ColorUnknown, c)

	_, ok = ColorByName("#zzzzzz")
	assert.False(t, ok)
}
