// Package term draws the game in a terminal with tcell.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Canvas is the part of tcell.Screen the renderer draws on
type Canvas interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

const (
	cellCols = 2 // terminal columns per grid cell
	boardX   = 1 // board origin inside the border
	boardY   = 1
)

var (
	background  = tcell.NewRGBColor(0x10, 0x10, 0x18)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	goldStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0xD7, 0x00)).Bold(true)
)

func rgb(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type Renderer struct {
	canvas Canvas
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Draw paints one frame. The caller shows it.
func (r *Renderer) Draw(snap game.Snapshot, settings manager.Settings) {
	r.canvas.Clear()

	w, h := snap.Grid.Width, snap.Grid.Height
	r.drawBorder(w*cellCols+2, h+2)

	bg := tcell.StyleDefault.Background(background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.cell(x, y, ' ', bg)
		}
	}

	for _, p := range snap.Particles {
		x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
		if snap.Grid.Contains(types.Point{X: x, Y: y}) {
			r.cell(x, y, '·', bg.Foreground(rgb(entity.Dim(p.Color, p.Alpha))))
		}
	}

	r.cell(snap.Food.Cell.X, snap.Food.Cell.Y, '●', bg.Foreground(rgb(entity.FoodColor)))
	if sf := snap.Special; sf != nil {
		glyph := '◆'
		if sf.Pulse < 1 {
			glyph = '◇'
		}
		r.cell(sf.Cell.X, sf.Cell.Y, glyph, bg.Foreground(rgb(sf.Kind.Color())).Bold(true))
	}

	head := snap.HeadColor()
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		col := entity.SegmentColor(i, len(snap.Snake), head)
		glyph := '█'
		if snap.Modifiers.Phased {
			glyph = '▒'
		}
		style := tcell.StyleDefault.Foreground(rgb(col)).Background(background)
		if i == 0 {
			r.head(p.X, p.Y, snap.Direction, style)
			continue
		}
		r.cell(p.X, p.Y, glyph, style)
	}

	if pop := snap.Popup; pop.Active {
		x := boardX + int(pop.X*cellCols) - len(pop.Text)/2
		y := boardY + int(math.Floor(pop.Y+pop.Offset))
		if y >= boardY {
			r.text(x, y, pop.Text, goldStyle.Background(background))
		}
	}

	r.drawOverlay(snap)
	r.drawStatus(snap, settings, boardY+h+1)
}

func (r *Renderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.canvas.SetContent(x, 0, '─', nil, borderStyle)
		r.canvas.SetContent(x, h-1, '─', nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		r.canvas.SetContent(0, y, '│', nil, borderStyle)
		r.canvas.SetContent(w-1, y, '│', nil, borderStyle)
	}
	r.canvas.SetContent(0, 0, '┌', nil, borderStyle)
	r.canvas.SetContent(w-1, 0, '┐', nil, borderStyle)
	r.canvas.SetContent(0, h-1, '└', nil, borderStyle)
	r.canvas.SetContent(w-1, h-1, '┘', nil, borderStyle)
}

// cell fills both columns of grid cell (x, y)
func (r *Renderer) cell(x, y int, ch rune, style tcell.Style) {
	cx := boardX + x*cellCols
	for i := 0; i < cellCols; i++ {
		r.canvas.SetContent(cx+i, boardY+y, ch, nil, style)
	}
}

var headGlyphs = map[types.Direction]string{
	types.Up:    "▀▀",
	types.Down:  "▄▄",
	types.Left:  "◀█",
	types.Right: "█▶",
}

// head points the head glyph along dir
func (r *Renderer) head(x, y int, dir types.Direction, style tcell.Style) {
	glyph, ok := headGlyphs[dir]
	if !ok {
		glyph = "██"
	}
	r.text(boardX+x*cellCols, boardY+y, glyph, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var lines []string
	switch snap.State {
	case game.Idle:
		lines = []string{"SNAKE", "Enter to start", "1/2/3: " + snap.Difficulty.String()}
	case game.Countdown:
		lines = []string{fmt.Sprint(snap.Countdown)}
	case game.Paused:
		lines = []string{"PAUSED", "Space to resume"}
	case game.GameOver:
		lines = []string{"GAME OVER"}
		if s := snap.Summary; s != nil {
			if s.NewHighScore {
				lines = append(lines, "New high score!")
			}
			lines = append(lines,
				fmt.Sprintf("Score %d  Best %d", s.Score, s.HighScore),
				fmt.Sprintf("Games %d  Avg %d", s.GamesPlayed, s.AverageScore),
				fmt.Sprintf("Power-ups %d  %.1fs", s.PowerUpsCollected, s.Duration.Seconds()),
			)
		}
		lines = append(lines, "Enter to play again")
	default:
		return
	}

	width := snap.Grid.Width * cellCols
	top := boardY + (snap.Grid.Height-len(lines))/2
	for i, line := range lines {
		style := textStyle.Background(background)
		if i == 0 {
			style = goldStyle.Background(background)
		}
		x := boardX + (width-len([]rune(line)))/2
		r.text(max(x, boardX), top+i, line, style)
	}
}

func (r *Renderer) drawStatus(snap game.Snapshot, settings manager.Settings, y int) {
	status := fmt.Sprintf("Score %d  High %d  %s", snap.Score, snap.HighScore, snap.Difficulty)
	r.text(0, y, status, textStyle)

	if p := snap.PowerUp; p != nil {
		bar := int(math.Round(p.Fraction() * 10))
		text := fmt.Sprintf("%-6s %s%s", p.Kind, strings.Repeat("■", bar), strings.Repeat("□", 10-bar))
		r.text(0, y+1, text, tcell.StyleDefault.Foreground(rgb(p.Kind.Color())))
	}

	sound := "off"
	if settings.SoundEnabled {
		sound = "on"
	}
	audio := fmt.Sprintf("Sound %s (n)  Music %s (m)  Vol %d%% (-/+)  q quits",
		sound, settings.MusicStyle, int(math.Round(settings.MusicVolume*100)))
	r.text(0, y+2, audio, tcell.StyleDefault.Foreground(tcell.ColorGray))
}
