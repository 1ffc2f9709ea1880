package model

import "fmt"

// Size is the width and height of every maze.
const Size = 10

// Maze is a Size x Size grid, true for open cells and false for obstacles.
// A Maze has no mutators; one value is shared by all robots.
type Maze struct {
	cells [Size][Size]bool
}

var defaultMaze = mustRead(
	"..#...#...",
	"..#...#...",
	".#....#...",
	"........#.",
	"........#.",
	"..........",
	".####.....",
	"..#.....#.",
	".#......#.",
	"........#.",
)

// DefaultMaze returns the process wide maze.
func DefaultMaze() *Maze {
	return defaultMaze
}

func mustRead(lines ...string) *Maze {
	m, err := read(lines)
	if err != nil {
		panic(err)
	}
	return m
}

// read builds a maze from text rows, '.' open and '#' obstacle.
func read(lines []string) (*Maze, error) {
	if len(lines) != Size {
		return nil, fmt.Errorf("maze needs %d rows, got %d", Size, len(lines))
	}
	m := &Maze{}
	for r, line := range lines {
		if len(line) != Size {
			return nil, fmt.Errorf("maze row %d needs %d cells, got %d", r, Size, len(line))
		}
		for c, char := range line {
			switch char {
			case '.':
				m.cells[r][c] = true
			case '#':
				m.cells[r][c] = false
			default:
				return nil, fmt.Errorf("maze row %d col %d: unknown cell %q", r, c, char)
			}
		}
	}
	return m, nil
}

// InBounds reports whether row and col address a cell of the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsOpen reports whether the cell is inside the grid and not an obstacle.
func (m *Maze) IsOpen(row, col int) bool {
	return m.InBounds(row, col) && m.cells[row][col]
}

// Obstacles lists every blocked cell, row by row.
func (m *Maze) Obstacles() [][2]int {
	blocked := make([][2]int, 0)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !m.cells[r][c] {
				blocked = append(blocked, [2]int{r, c})
			}
		}
	}
	return blocked
}

func (m *Maze) String() string {
	b := make([]byte, 0, Size*(Size+1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if m.cells[r][c] {
				b = append(b, '.')
			} else {
				b = append(b, '#')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
