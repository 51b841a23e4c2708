package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a unit step on the grid: exactly one of DX, DY is non-zero.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Delta returns the direction as a point offset.
func (d Direction) Delta() core.Point {
	return core.Point{X: d.DX, Y: d.DY}
}

// Opposite reports whether o points exactly the other way.
func (d Direction) Opposite(o Direction) bool {
	return d.DX == -o.DX && d.DY == -o.DY
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return Direction{}, false
	}
}
