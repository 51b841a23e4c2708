package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only projection of the game for renderers, replay
// verification and diagnostics. Segments is a copy; callers may keep it.
type Snapshot struct {
	Tick      uint64       // Frames stepped since the game was created
	Segments  []core.Point // Head first
	Food      core.Point
	HasFood   bool
	Score     int
	Speed     int
	Status    Status
	Direction Direction
	GridW     int
	GridH     int
	Moves     uint64 // Movement steps since the last reset
}

// Head returns the head segment.
func (s Snapshot) Head() core.Point {
	if len(s.Segments) == 0 {
		return core.Point{}
	}
	return s.Segments[0]
}

// Length returns the number of segments.
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// Equal compares two snapshots field by field, segments included.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Food != o.Food || s.HasFood != o.HasFood ||
		s.Score != o.Score || s.Speed != o.Speed || s.Status != o.Status ||
		s.Direction != o.Direction || s.GridW != o.GridW || s.GridH != o.GridH ||
		s.Moves != o.Moves || len(s.Segments) != len(o.Segments) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}

// String is a compact one-line summary used in logs and headless replays.
func (s Snapshot) String() string {
	head := s.Head()
	return fmt.Sprintf("tick=%d status=%s score=%d speed=%d length=%d head=(%d,%d) dir=%s food=(%d,%d)",
		s.Tick, s.Status, s.Score, s.Speed, s.Length(), head.X, head.Y, s.Direction, s.Food.X, s.Food.Y)
}

// Debug returns a multi-line dump including every segment.
func (s Snapshot) Debug() string {
	var sb strings.Builder
	sb.WriteString(s.String())
	sb.WriteString("\nsegments:")
	for i, p := range s.Segments {
		if i%10 == 0 {
			sb.WriteString("\n ")
		}
		fmt.Fprintf(&sb, " (%d,%d)", p.X, p.Y)
	}
	return sb.String()
}
