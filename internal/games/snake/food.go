package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// maxFoodSamples bounds rejection sampling before switching to an exact
// pick from the free cells.
const maxFoodSamples = 64

// placeFood puts food on a uniformly random cell not covered by the snake.
// When the snake covers the whole grid there is nowhere to put it and the
// food is marked absent.
func (m *Machine) placeFood() {
	occupied := make(map[core.Point]struct{}, len(m.snake))
	for _, seg := range m.snake {
		if m.inBounds(seg) {
			occupied[seg] = struct{}{}
		}
	}

	cells := m.rules.GridW * m.rules.GridH
	if len(occupied) >= cells {
		m.food = core.Point{X: -1, Y: -1}
		m.hasFood = false
		return
	}

	for range maxFoodSamples {
		p := core.Point{X: m.rng.Intn(m.rules.GridW), Y: m.rng.Intn(m.rules.GridH)}
		if _, taken := occupied[p]; !taken {
			m.food = p
			m.hasFood = true
			return
		}
	}

	free := make([]core.Point, 0, cells-len(occupied))
	for y := range m.rules.GridH {
		for x := range m.rules.GridW {
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	m.food = free[m.rng.Intn(len(free))]
	m.hasFood = true
}
