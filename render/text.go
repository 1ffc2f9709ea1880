package render

import (
	"strings"

	"github.com/zucenko/robomaze/model"
)

// Text draws the maze as characters: R for the robot (r once depleted),
// # for obstacles and . for open cells.
func Text(r Observable) string {
	m := r.Maze()
	var b strings.Builder
	for row := 0; row < model.Size; row++ {
		for col := 0; col < model.Size; col++ {
			switch {
			case row == r.Row() && col == r.Column():
				if r.Battery() > 0 {
					b.WriteString("R ")
				} else {
					b.WriteString("r ")
				}
			case !m.IsOpen(row, col):
				b.WriteString("# ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
