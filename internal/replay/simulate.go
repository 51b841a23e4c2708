package replay

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Result summarizes a headless playback.
type Result struct {
	Final     snake.Snapshot
	Eats      int
	GameOvers int
}

// NewGame builds a game ready to replay rec with the given theme.
func NewGame(rec Recording, theme config.Theme, screenW, screenH int) *snake.Game {
	g := snake.NewGame(rec.Rules, theme)
	g.Reset(core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: rec.Rules.FrameRate,
		Seed:     rec.Seed,
	})
	return g
}

// Simulate plays a recording to the end without a screen.
func Simulate(rec Recording) Result {
	g := NewGame(rec, config.ASCIITheme(), 0, 0)
	p := NewPlayer(rec)

	var res Result
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		step := g.Step(in)
		for _, ev := range step.Events {
			switch ev {
			case core.EventEat:
				res.Eats++
			case core.EventGameOver:
				res.GameOvers++
			}
		}
	}

	res.Final = g.Snapshot()
	return res
}
