package ui

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

const (
	maxScores     = 50 // games shown in the score graph
	borderPadding = 10
	powerUpBar    = 10
)

// Panel is the out-of-game data shown beside the board
type Panel struct {
	Stats    manager.Stats
	Recent   []manager.GameRecord
	Settings manager.Settings
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// stats panel takes a quarter of the window
	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// layout fits the grid into the game area, centred
func (r *Renderer) layout(g types.Grid) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2
	r.cellSize = max(min(availableWidth/int32(g.Width), availableHeight/int32(g.Height)), 1)

	r.totalGridWidth = r.cellSize * int32(g.Width)
	r.totalGridHeight = r.cellSize * int32(g.Height)
	r.offsetX = (r.gameWidth - r.totalGridWidth) / 2
	r.offsetY = (r.gameHeight - r.totalGridHeight) / 2
}

// cellCentre returns the pixel centre of a position given in cell units
func (r *Renderer) cellCentre(x, y float64) (float32, float32) {
	cs := float64(r.cellSize)
	return float32(float64(r.offsetX) + x*cs + cs/2), float32(float64(r.offsetY) + y*cs + cs/2)
}

func (r *Renderer) Draw(snap game.Snapshot, panel Panel) {
	r.UpdateDimensions()
	r.layout(snap.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/14)
	lineHeight := fontSize + fontSize/3
	now := rl.GetTime()

	r.drawBackground(now)
	r.drawParticles(snap.Particles)
	r.drawFood(snap.Food)
	if snap.Special != nil {
		r.drawSpecial(*snap.Special)
	}
	r.drawSnake(snap)
	if snap.PowerUp != nil {
		r.drawPowerUp(*snap.PowerUp, now, fontSize)
	}
	r.drawPopup(snap.Popup, fontSize)
	r.drawOverlay(snap, fontSize, lineHeight)
	r.drawStatsPanel(snap, panel, fontSize, lineHeight)

	rl.EndDrawing()
}

// drawBackground paints a slowly drifting radial gradient under a faint grid
func (r *Renderer) drawBackground(now float64) {
	pulse := 0.5 + 0.2*math.Sin(now)
	radius := float32(float64(r.totalGridWidth) * (0.8 + 0.2*pulse))
	cx := r.offsetX + r.totalGridWidth/2 + int32(20*math.Sin(now/2))
	cy := r.offsetY + r.totalGridHeight/2 + int32(20*math.Cos(now/1.8))

	hue := math.Mod(now*20, 360)
	inner := toRL(hsl(hue, 0.7, 0.15), 1)
	outer := toRL(hsl(hue+180, 0.7, 0.05), 1)

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, outer)
	rl.BeginScissorMode(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight)
	rl.DrawCircleGradient(cx, cy, radius, inner, outer)
	rl.EndScissorMode()

	line := rl.Fade(rl.White, float32(0.05+0.05*math.Sin(now)))
	for x := r.offsetX; x <= r.offsetX+r.totalGridWidth; x += r.cellSize {
		rl.DrawLine(x, r.offsetY, x, r.offsetY+r.totalGridHeight, line)
	}
	for y := r.offsetY; y <= r.offsetY+r.totalGridHeight; y += r.cellSize {
		rl.DrawLine(r.offsetX, y, r.offsetX+r.totalGridWidth, y, line)
	}
}

func (r *Renderer) drawParticles(particles []entity.Particle) {
	cs := float32(r.cellSize)
	for _, p := range particles {
		x, y := r.cellCentre(p.X-0.5, p.Y-0.5)
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, float32(p.Radius)*cs, toRL(p.Color, p.Alpha))
	}
}

func (r *Renderer) drawFood(f entity.Food) {
	x, y := r.cellCentre(float64(f.Cell.X), float64(f.Cell.Y))
	rl.DrawCircleGradient(int32(x), int32(y), float32(r.cellSize),
		toRL(entity.FoodColor, 0.8), toRL(entity.FoodColor, 0))
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, float32(r.cellSize)/3, toRL(entity.FoodColor, 1))
}

func (r *Renderer) drawSpecial(sf entity.SpecialFood) {
	x, y := r.cellCentre(float64(sf.Cell.X), float64(sf.Cell.Y))
	col := sf.Kind.Color()
	rl.DrawCircleGradient(int32(x), int32(y), float32(r.cellSize)*1.5, toRL(col, 0.7), toRL(col, 0))

	size := float32(r.cellSize) / 3 * float32(sf.Pulse)
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size/2, toRL(col, 1))
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	n := len(snap.Snake)
	alpha := 1.0
	if snap.Modifiers.Phased {
		alpha = 0.5
	}
	cs := float32(r.cellSize)
	head := snap.HeadColor()

	// tail first so the head ends up on top
	for i := n - 1; i >= 0; i-- {
		p := snap.Snake[i]
		col := entity.SegmentColor(i, n, head)
		x, y := r.cellCentre(float64(p.X), float64(p.Y))

		if i == 0 || snap.PowerUp != nil {
			glow := col
			radius := cs * 0.8
			if i == 0 {
				radius = cs * 1.2
			} else {
				glow = snap.PowerUp.Kind.Color()
			}
			rl.DrawCircleGradient(int32(x), int32(y), radius, toRL(glow, 0.5*alpha), toRL(glow, 0))
		}

		if i == 0 {
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, cs/2*0.9, toRL(col, alpha))
			r.drawEyes(x, y, snap.Direction)
			continue
		}
		size := cs * 0.8
		rect := rl.Rectangle{X: x - size/2, Y: y - size/2, Width: size, Height: size}
		rl.DrawRectangleRounded(rect, 0.5, 4, toRL(col, alpha))
	}
}

// drawEyes places two pupils on the side of the head facing d
func (r *Renderer) drawEyes(x, y float32, d types.Direction) {
	cs := float32(r.cellSize)
	near, far := cs/8, cs/5

	var e1, e2 rl.Vector2
	switch d {
	case types.Up:
		e1, e2 = rl.Vector2{X: -far, Y: -near}, rl.Vector2{X: far, Y: -near}
	case types.Down:
		e1, e2 = rl.Vector2{X: -far, Y: near}, rl.Vector2{X: far, Y: near}
	case types.Left:
		e1, e2 = rl.Vector2{X: -near, Y: -far}, rl.Vector2{X: -near, Y: far}
	default:
		e1, e2 = rl.Vector2{X: near, Y: -far}, rl.Vector2{X: near, Y: far}
	}
	rl.DrawCircleV(rl.Vector2{X: x + e1.X, Y: y + e1.Y}, cs/10, rl.Black)
	rl.DrawCircleV(rl.Vector2{X: x + e2.X, Y: y + e2.Y}, cs/10, rl.Black)
}

// drawPowerUp shows the remaining time as a bar along the bottom of the board
func (r *Renderer) drawPowerUp(p manager.ActivePowerUp, now float64, fontSize int32) {
	col := p.Kind.Color()
	width := int32(float64(r.totalGridWidth) * p.Fraction())
	y := r.offsetY + r.totalGridHeight - powerUpBar
	alpha := 0.3 + 0.1*math.Sin(now*5)

	half := width / 2
	rl.DrawRectangleGradientH(r.offsetX, y, half, powerUpBar, toRL(col, alpha), rl.Fade(rl.White, float32(alpha)))
	rl.DrawRectangleGradientH(r.offsetX+half, y, width-half, powerUpBar, rl.Fade(rl.White, float32(alpha)), toRL(col, alpha))

	if p.Kind == entity.Shield {
		secs := int(math.Ceil(p.Remaining.Seconds()))
		text := fmt.Sprintf("%ds", secs)
		size := fontSize * 3 / 2
		w := rl.MeasureText(text, size)
		rl.DrawText(text, r.offsetX+(r.totalGridWidth-w)/2, r.offsetY+size, size, toRL(shieldBlue, 1))
	}
}

func (r *Renderer) drawPopup(p entity.ScorePopup, fontSize int32) {
	if !p.Active {
		return
	}
	x, y := r.cellCentre(p.X-0.5, p.Y+p.Offset-0.5)
	size := fontSize * 3 / 2
	w := rl.MeasureText(p.Text, size)
	rl.DrawText(p.Text, int32(x)-w/2+1, int32(y)+1, size, rl.Fade(rl.Black, float32(p.Opacity)))
	rl.DrawText(p.Text, int32(x)-w/2, int32(y), size, toRL(gold, p.Opacity))
}

func (r *Renderer) drawOverlay(snap game.Snapshot, fontSize, lineHeight int32) {
	var lines []string
	big := fontSize * 2

	switch snap.State {
	case game.Idle:
		lines = []string{"SNAKE", "Enter to start", "1/2/3 difficulty: " + snap.Difficulty.String()}
	case game.Countdown:
		text := fmt.Sprint(snap.Countdown)
		size := big * 3
		w := rl.MeasureText(text, size)
		rl.DrawText(text, r.offsetX+(r.totalGridWidth-w)/2, r.offsetY+(r.totalGridHeight-size)/2, size, rl.White)
		return
	case game.Paused:
		lines = []string{"PAUSED", "Space to resume"}
	case game.GameOver:
		lines = []string{"GAME OVER"}
		if s := snap.Summary; s != nil {
			if s.NewHighScore {
				lines = append(lines, "New high score!")
			}
			lines = append(lines,
				fmt.Sprintf("Score: %d", s.Score),
				fmt.Sprintf("High score: %d", s.HighScore),
				fmt.Sprintf("Games played: %d", s.GamesPlayed),
				fmt.Sprintf("Average: %d", s.AverageScore),
				fmt.Sprintf("Power-ups: %d", s.PowerUpsCollected),
				fmt.Sprintf("Time: %.1fs", s.Duration.Seconds()),
			)
		}
		lines = append(lines, "Enter to play again")
	default:
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.6))
	height := big + lineHeight*int32(len(lines)-1)
	y := r.offsetY + (r.totalGridHeight-height)/2
	for i, line := range lines {
		size, col := fontSize, rl.White
		if i == 0 {
			size, col = big, toRL(entity.HeadColor, 1)
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, r.offsetX+(r.totalGridWidth-w)/2, y, size, col)
		y += size + lineHeight - fontSize
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, panel Panel, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	row := func(text string, col rl.Color) {
		rl.DrawText(text, statsX, statsY, fontSize, col)
		statsY += lineHeight
	}

	row(fmt.Sprintf("Score: %d", snap.Score), rl.White)
	row(fmt.Sprintf("High Score: %d", snap.HighScore), toRL(gold, 1))
	row("Difficulty: "+snap.Difficulty.String(), rl.White)
	if snap.PowerUp != nil {
		row(fmt.Sprintf("Power-up: %s %.1fs", snap.PowerUp.Kind, snap.PowerUp.Remaining.Seconds()),
			toRL(snap.PowerUp.Kind.Color(), 1))
	} else {
		row("Power-up: -", rl.LightGray)
	}

	statsY += lineHeight / 2
	row("Stats:", rl.White)
	row(fmt.Sprintf("Games: %d", panel.Stats.GamesPlayed), rl.Green)
	row(fmt.Sprintf("Avg Score: %d", panel.Stats.AverageScore()), rl.Green)
	row(fmt.Sprintf("Power-ups: %d", panel.Stats.PowerUpsCollected), rl.Purple)

	statsY += lineHeight / 2
	row("Sound:", rl.White)
	if panel.Settings.SoundEnabled {
		row("On (N)", rl.Green)
	} else {
		row("Off (N)", rl.Red)
	}
	row("Music: "+panel.Settings.MusicStyle.String()+" (M)", rl.White)
	row(fmt.Sprintf("Volume: %s (-/+)", volumeBar(panel.Settings.MusicVolume)), rl.White)

	r.drawScoreGraph(panel, statsX, fontSize)
}

// volumeBar renders v in [0,1] as ten blocks
func volumeBar(v float64) string {
	filled := int(math.Round(min(max(v, 0), 1) * 10))
	return strings.Repeat("|", filled) + strings.Repeat(".", 10-filled)
}

// drawScoreGraph plots recent game scores with the lifetime average dashed
func (r *Renderer) drawScoreGraph(panel Panel, statsX, fontSize int32) {
	graphX := statsX
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Recent Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := make([]int, 0, len(panel.Recent))
	for _, rec := range panel.Recent {
		scores = append(scores, rec.Score)
	}
	if len(scores) > maxScores {
		scores = scores[len(scores)-maxScores:]
	}

	maxScore := max(panel.Stats.HighScore, 1)
	for _, s := range scores {
		maxScore = max(maxScore, s)
	}

	scale := func(score float64) int32 {
		return graphY + graphHeight - int32(float64(graphHeight)*score/float64(maxScore))
	}
	col := toRL(entity.HeadColor, 1)

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		rl.DrawLine(x1, scale(float64(scores[j-1])), x2, scale(float64(scores[j])), col)
	}

	if panel.Stats.GamesPlayed > 0 {
		avgY := scale(float64(panel.Stats.AverageScore()))
		for x := graphX; x < graphX+r.graphWidth; x += 5 {
			rl.DrawLine(x, avgY, x+2, avgY, toRL(gold, 1))
		}
	}

	rl.DrawText(fmt.Sprintf("Best: %d", panel.Stats.HighScore), graphX, r.screenHeight-fontSize-5, fontSize, rl.White)
}
