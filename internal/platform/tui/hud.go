package tui

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudData is what a HUD template can reference.
type hudData struct {
	Score  int
	Speed  int
	Length int
	Status string
	Moves  uint64
	Tick   uint64
	Time   time.Duration // Elapsed play time at the game's frame rate
}

// NewHUD compiles a HUD format string. The empty format yields the default
// score line. The template is executed once per rendered frame.
func NewHUD(format string, frameRate int) (snake.HUDFunc, error) {
	if strings.TrimSpace(format) == "" {
		return snake.DefaultHUD, nil
	}

	tmpl, err := template.New("hud").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return nil, fmt.Errorf("tui: invalid hud format: %w", err)
	}

	return func(s snake.Snapshot) string {
		data := hudData{
			Score:  s.Score,
			Speed:  s.Speed,
			Length: s.Length(),
			Status: s.Status.String(),
			Moves:  s.Moves,
			Tick:   s.Tick,
		}
		if frameRate > 0 {
			data.Time = (time.Duration(s.Tick) * time.Second / time.Duration(frameRate)).Truncate(time.Second)
		}

		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			return snake.DefaultHUD(s)
		}
		// One line only
		line, _, _ := strings.Cut(sb.String(), "\n")
		return line
	}, nil
}
