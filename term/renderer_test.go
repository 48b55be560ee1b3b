package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// fakeCanvas records the last rune and style set at each position
type fakeCanvas struct {
	cells map[[2]int]cell
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]cell)}
}

func (f *fakeCanvas) Size() (int, int) { return 80, 30 }
func (f *fakeCanvas) Clear()           { f.cells = make(map[[2]int]cell) }
func (f *fakeCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{ch: mainc, style: style}
}

func (f *fakeCanvas) at(x, y int) cell {
	return f.cells[[2]int{x, y}]
}

// row reads the runes of line y from column 0 to width
func (f *fakeCanvas) row(y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c := f.at(x, y)
		if c.ch == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.ch)
	}
	return sb.String()
}

// gridCell returns the left column of grid cell (x, y)
func (f *fakeCanvas) gridCell(x, y int) cell {
	return f.at(boardX+x*cellCols, boardY+y)
}

func runningSnapshot() game.Snapshot {
	return game.Snapshot{
		State:     game.Running,
		Grid:      types.Grid{Width: 10, Height: 6},
		Snake:     []types.Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}},
		Direction: types.Right,
		Food:      entity.Food{Cell: types.Point{X: 7, Y: 4}, Value: 1},
		Score:     3,
		HighScore: 12,
	}
}

func TestDrawBoard(t *testing.T) {
	c := newFakeCanvas()
	NewRenderer(c).Draw(runningSnapshot(), manager.DefaultSettings())

	if got := c.at(0, 0).ch; got != '┌' {
		t.Errorf("corner = %q", got)
	}
	if got := c.at(10*cellCols+1, 7).ch; got != '┘' {
		t.Errorf("far corner = %q", got)
	}
	if got := c.gridCell(7, 4).ch; got != '●' {
		t.Errorf("food = %q", got)
	}
	if got := c.gridCell(4, 2).ch; got != '█' || c.at(boardX+4*cellCols+1, boardY+2).ch != '▶' {
		t.Errorf("head = %q", got)
	}
	if got := c.gridCell(2, 2).ch; got != '█' {
		t.Errorf("tail = %q", got)
	}

	fg, _, _ := c.gridCell(3, 2).style.Decompose()
	if want := rgb(entity.SegmentColor(1, 3, entity.HeadColor)); fg != want {
		t.Errorf("body colour = %v, want %v", fg, want)
	}

	status := c.row(8, 40)
	if !strings.Contains(status, "Score 3") || !strings.Contains(status, "High 12") {
		t.Errorf("status = %q", status)
	}
	if audio := c.row(10, 60); !strings.Contains(audio, "Music energetic") {
		t.Errorf("audio line = %q", audio)
	}
}

func TestDrawPhasedAndPowerUp(t *testing.T) {
	snap := runningSnapshot()
	snap.Modifiers.Phased = true
	snap.PowerUp = &manager.ActivePowerUp{Kind: entity.Ghost, Remaining: time.Second, Duration: 2 * time.Second}

	c := newFakeCanvas()
	NewRenderer(c).Draw(snap, manager.DefaultSettings())

	if got := c.gridCell(3, 2).ch; got != '▒' {
		t.Errorf("phased body = %q", got)
	}
	if bar := c.row(9, 20); !strings.HasPrefix(bar, "ghost  ■■■■■□□□□□") {
		t.Errorf("power-up bar = %q", bar)
	}
	fg, _, _ := c.gridCell(4, 2).style.Decompose()
	if fg != rgb(entity.Ghost.Color()) {
		t.Errorf("head not tinted: %v", fg)
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		state game.State
		want  string
	}{
		{game.Idle, "SNAKE"},
		{game.Paused, "PAUSED"},
		{game.GameOver, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			snap := runningSnapshot()
			snap.State = tt.state
			c := newFakeCanvas()
			NewRenderer(c).Draw(snap, manager.DefaultSettings())

			var found bool
			for y := boardY; y < boardY+snap.Grid.Height; y++ {
				if strings.Contains(c.row(y, 30), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("overlay %q not drawn", tt.want)
			}
		})
	}
}

func TestDrawGameOverSummary(t *testing.T) {
	snap := runningSnapshot()
	snap.Grid.Height = 10
	snap.State = game.GameOver
	snap.Summary = &manager.Summary{Score: 20, HighScore: 20, NewHighScore: true, GamesPlayed: 4, AverageScore: 9}

	c := newFakeCanvas()
	NewRenderer(c).Draw(snap, manager.DefaultSettings())

	var board []string
	for y := boardY; y < boardY+snap.Grid.Height; y++ {
		board = append(board, c.row(y, 30))
	}
	text := strings.Join(board, "\n")
	for _, want := range []string{"New high score!", "Score 20  Best 20", "Games 4  Avg 9"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}
