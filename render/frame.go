package render

import (
	"fmt"
	"image/color"

	"github.com/zucenko/robomaze/model"
)

// Observable is what a frame reads from a robot.
type Observable interface {
	Name() string
	Color() string
	Row() int
	Column() int
	Battery() int
	Maze() *model.Maze
}

// depther is implemented by underwater robots.
type depther interface {
	Depth() int
}

type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

// Frame is everything needed to draw one picture of a robot in its maze.
type Frame struct {
	Title      string
	Status     string
	Size       int
	Background color.RGBA
	Obstacles  []Rect
	Grid       []Line
	Body       Rect
	Eyes       [2]Rect
	Upright    bool
}

// NewFrame lays out the maze and the robot with cells of unit pixels. A
// charged robot stands upright, a depleted one lies on its side.
func NewFrame(r Observable, unit int) Frame {
	u := float64(unit)
	m := r.Maze()
	f := Frame{
		Title:      r.Name() + " in the Maze",
		Status:     status(r),
		Size:       unit * model.Size,
		Background: ColorBackground,
		Upright:    r.Battery() > 0,
	}

	var eyeX, eyeY float64
	body := Rect{Color: colorOrUnknown(r.Color())}
	if f.Upright {
		body.X = float64(r.Column())*u + u/4
		body.Y = float64(r.Row()) * u
		body.W, body.H = u/2, u
		eyeX = body.X + body.W - 3*u/20
		eyeY = body.Y + u/10
	} else {
		body.X = float64(r.Column()) * u
		body.Y = float64(r.Row())*u + u/2
		body.W, body.H = u, u/2
		eyeX = body.X + body.W - 9*u/10
		eyeY = body.Y + body.H - 3*u/20
	}
	f.Body = body
	f.Eyes[0] = Rect{X: body.X + u/10, Y: body.Y + u/10, W: u / 20, H: u / 20, Color: ColorEye}
	f.Eyes[1] = Rect{X: eyeX, Y: eyeY, W: u / 20, H: u / 20, Color: ColorEye}

	for _, o := range m.Obstacles() {
		f.Obstacles = append(f.Obstacles, Rect{
			X: float64(o[1]) * u, Y: float64(o[0]) * u,
			W: u, H: u,
			Color: ColorObstacle,
		})
	}
	size := float64(f.Size)
	for i := 0; i < model.Size; i++ {
		at := float64(i) * u
		f.Grid = append(f.Grid, Line{X1: 0, Y1: at, X2: size, Y2: at})
		f.Grid = append(f.Grid, Line{X1: at, Y1: 0, X2: at, Y2: size})
	}
	return f
}

// Shift moves the robot by dx, dy pixels, leaving the maze in place.
func (f Frame) Shift(dx, dy float64) Frame {
	f.Body.X += dx
	f.Body.Y += dy
	for i := range f.Eyes {
		f.Eyes[i].X += dx
		f.Eyes[i].Y += dy
	}
	return f
}

func status(r Observable) string {
	s := fmt.Sprintf("%s battery %d/%d", r.Name(), r.Battery(), model.Full)
	if d, ok := r.(depther); ok {
		s += fmt.Sprintf(" depth %d", d.Depth())
	}
	return s
}
