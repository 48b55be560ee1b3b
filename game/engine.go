package game

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// popup motion per tick, in cell units
const (
	popupRise = 0.1
	popupFade = 0.02
)

var startCell = types.Point{X: 5, Y: 10}

// Engine owns one game. Every mutation happens through its methods, which
// must be called from a single goroutine.
type Engine struct {
	cfg        Config
	grid       types.Grid
	difficulty types.Difficulty
	state      State

	snake     *entity.Snake
	direction types.Direction
	pending   types.Direction
	food      entity.Food
	special   *entity.SpecialFood
	mods      manager.Modifiers
	popup     entity.ScorePopup
	score     int
	powerUps  int

	clock     time.Duration // game time spent running
	acc       time.Duration
	countdown int
	startedAt time.Time
	summary   *manager.Summary

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	powerUpMgr   *manager.PowerUpManager
	particleMgr  *manager.ParticleManager
	stateMgr     *manager.StateManager
	events       *EventBus

	now func() time.Time
}

// NewEngine builds an idle engine with the starting layout in place. A nil
// state manager keeps records in memory only.
func NewEngine(cfg Config, stateMgr *manager.StateManager) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if stateMgr == nil {
		stateMgr = manager.NewStateManager(nil)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	collisionMgr := manager.NewCollisionManager(grid)

	e := &Engine{
		cfg:          cfg,
		grid:         grid,
		difficulty:   cfg.Difficulty,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, cfg.Food, rng, collisionMgr),
		powerUpMgr:   manager.NewPowerUpManager(cfg.PowerUpDuration),
		particleMgr:  manager.NewParticleManager(rng),
		stateMgr:     stateMgr,
		events:       NewEventBus(),
		now:          time.Now,
	}
	e.reset()
	return e, nil
}

func (e *Engine) Events() *EventBus {
	return e.events
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Difficulty() types.Difficulty {
	return e.difficulty
}

// reset restores the starting layout and clears every deadline
func (e *Engine) reset() {
	e.snake = entity.NewSnake(e.startBody()...)
	e.direction = types.Right
	e.pending = types.Right
	e.special = nil
	e.powerUpMgr.Reset()
	e.mods = manager.Modifiers{TickInterval: e.difficulty.Interval()}
	e.particleMgr.Clear()
	e.popup = entity.ScorePopup{}
	e.score = 0
	e.powerUps = 0
	e.clock = 0
	e.acc = 0
	e.countdown = 0
	e.summary = nil

	food, _ := e.foodMgr.NewFood(manager.OccupancyOf(e.snake.Body...))
	e.food = food
}

// startBody lays the snake out heading right, trailing to the left
func (e *Engine) startBody() []types.Point {
	head := startCell
	if !e.grid.Contains(head) {
		head = types.Point{X: e.grid.Width / 2, Y: e.grid.Height / 2}
	}
	body := []types.Point{head}
	for len(body) < types.StartLength {
		next, _ := e.grid.Advance(body[len(body)-1], types.Left)
		body = append(body, next)
	}
	return body
}

// Start begins a fresh game from any state, through the countdown
func (e *Engine) Start() {
	e.reset()
	e.startedAt = e.now()

	if e.cfg.CountdownSteps <= 0 {
		e.begin()
		return
	}
	e.state = Countdown
	e.countdown = e.cfg.CountdownSteps
	e.events.Emit(Event{Type: EventCountdownTick, Countdown: e.countdown})
}

// Restart is Start, named for the game-over screen
func (e *Engine) Restart() {
	e.Start()
}

func (e *Engine) begin() {
	e.state = Running
	e.countdown = 0
	e.acc = 0
	e.mods.TickInterval = e.difficulty.Interval()
	e.events.Emit(Event{Type: EventGameStart})
}

// Pause suspends ticking. Calling it again has no effect.
func (e *Engine) Pause() {
	if e.state != Running {
		return
	}
	e.state = Paused
	e.acc = 0
	e.events.Emit(Event{Type: EventPause})
}

// Resume continues at the interval in force when the game was paused
func (e *Engine) Resume() {
	if e.state != Paused {
		return
	}
	e.state = Running
	e.acc = 0
	e.events.Emit(Event{Type: EventResume})
}

func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.Pause()
	case Paused:
		e.Resume()
	}
}

// SetDirection latches d for the next tick. The reverse of the direction
// the snake last moved in is dropped.
func (e *Engine) SetDirection(d types.Direction) {
	if e.state != Running {
		return
	}
	if d == e.direction.Opposite() {
		return
	}
	e.pending = d
}

// SetDifficulty takes effect when the next game starts running, so a
// choice made during the countdown still counts.
func (e *Engine) SetDifficulty(d types.Difficulty) {
	e.difficulty = d
	if e.state == Idle || e.state == GameOver || e.state == Countdown {
		e.mods.TickInterval = d.Interval()
	}
}

// Update advances the engine by dt of wall time and returns the number of
// ticks run.
func (e *Engine) Update(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}

	switch e.state {
	case Countdown:
		e.acc += dt
		for e.state == Countdown && e.acc >= e.cfg.CountdownStep {
			e.acc -= e.cfg.CountdownStep
			e.countdown--
			if e.countdown > 0 {
				e.events.Emit(Event{Type: EventCountdownTick, Countdown: e.countdown})
			} else {
				e.begin()
			}
		}
	case Running:
		ticks := 0
		e.acc += dt
		for e.state == Running && e.acc >= e.mods.TickInterval {
			e.acc -= e.mods.TickInterval
			e.Tick()
			ticks++
			if e.cfg.MaxCatchUp > 0 && ticks >= e.cfg.MaxCatchUp {
				e.acc %= e.mods.TickInterval
				break
			}
		}
		return ticks
	case GameOver:
		// let the death burst play out at the last tick rate
		e.acc += dt
		steps := 0
		for e.acc >= e.mods.TickInterval {
			e.acc -= e.mods.TickInterval
			e.animate()
			steps++
			if e.cfg.MaxCatchUp > 0 && steps >= e.cfg.MaxCatchUp {
				e.acc %= e.mods.TickInterval
				break
			}
		}
	}
	return 0
}

// Tick runs one step of the game. It does nothing unless the game is running.
func (e *Engine) Tick() {
	if e.state != Running {
		return
	}
	interval := e.mods.TickInterval
	e.clock += interval

	e.direction = e.pending
	head, wrapped := e.grid.Advance(e.snake.GetHead(), e.direction)
	if wrapped {
		e.burst(head, manager.WrapBurst, entity.WrapColor)
		e.events.Emit(Event{Type: EventWrap, Cell: head})
	}

	ateFood := e.collisionMgr.IsFoodCollision(head, e.food)
	ateSpecial := e.collisionMgr.IsSpecialCollision(head, e.special)
	e.snake.Move(head, ateFood || ateSpecial)

	if e.collisionMgr.SelfCollision(e.snake, e.mods) {
		e.gameOver()
		return
	}

	if ateFood {
		if !e.eatFood(head) {
			e.gameOver()
			return
		}
	}
	activated := false
	if ateSpecial {
		e.eatSpecial(head)
		activated = true
	}

	if e.special != nil && e.clock >= e.special.ExpiresAt {
		kind, cell := e.special.Kind, e.special.Cell
		e.special = nil
		e.events.Emit(Event{Type: EventSpecialExpired, Kind: kind, Cell: cell})
	}
	if !activated {
		active, _ := e.powerUpMgr.Active()
		var expired bool
		e.mods, expired = e.powerUpMgr.Tick(interval, e.mods)
		if expired {
			e.events.Emit(Event{Type: EventPowerUpExpired, Kind: active.Kind})
		}
	}

	e.animate()
}

// eatFood scores the regular food and respawns it. It reports false when
// the snake has filled the board.
func (e *Engine) eatFood(head types.Point) bool {
	e.score += e.food.Value
	e.showPopup(head, e.food.Value)
	e.burst(head, manager.EatBurst, entity.FoodColor)
	e.events.Emit(Event{Type: EventEat, Cell: head, Points: e.food.Value})

	occupied := manager.OccupancyOf(e.snake.Body...)
	if e.special != nil && e.special.Cell != head {
		occupied[e.special.Cell] = struct{}{}
	}
	food, ok := e.foodMgr.NewFood(occupied)
	if !ok {
		log.Printf("Board full at score %d", e.score)
		return false
	}
	e.food = food

	if sf := e.foodMgr.MaybeSpawnSpecial(occupied, food.Cell, e.special, e.clock); sf != nil {
		e.special = sf
		e.events.Emit(Event{Type: EventSpecialSpawned, Cell: sf.Cell, Kind: sf.Kind})
	}
	return true
}

func (e *Engine) eatSpecial(head types.Point) {
	sf := e.special
	e.special = nil

	e.score += sf.Points
	e.powerUps++
	e.stateMgr.AddPowerUp()
	e.showPopup(head, sf.Points)
	e.mods = e.powerUpMgr.Activate(sf.Kind, e.mods)
	e.burst(head, manager.SpecialBurst, sf.Kind.Color())
	e.events.Emit(Event{Type: EventPowerUp, Cell: head, Points: sf.Points, Kind: sf.Kind})
}

// gameOver freezes the snake where it collided and records the game
func (e *Engine) gameOver() {
	e.state = GameOver
	e.acc = 0
	e.burst(e.snake.GetHead(), manager.DeathBurst, entity.DeathColor)

	rec := manager.GameRecord{
		ID:         uuid.New().String(),
		StartTime:  e.startedAt,
		EndTime:    e.now(),
		Difficulty: e.difficulty.String(),
		Score:      e.score,
		PowerUps:   e.powerUps,
	}
	summary := e.stateMgr.RecordGame(rec)
	e.summary = &summary

	log.Printf("Game over: score %d (high %d) on %s after %s",
		summary.Score, summary.HighScore, summary.Difficulty, summary.Duration.Round(time.Second))
	e.events.Emit(Event{Type: EventGameOver, Cell: e.snake.GetHead(), Points: e.score, Summary: &summary})
}

// animate advances the purely visual state by one tick
func (e *Engine) animate() {
	if e.special != nil {
		e.special.StepPulse()
	}
	e.particleMgr.Update()

	if e.popup.Active {
		e.popup.Offset -= popupRise
		e.popup.Opacity -= popupFade
		if e.popup.Opacity <= 0 {
			e.popup.Active = false
		}
	}
}

func (e *Engine) showPopup(cell types.Point, points int) {
	e.popup = entity.ScorePopup{
		Active:  true,
		Text:    "+" + strconv.Itoa(points),
		X:       float64(cell.X) + 0.5,
		Y:       float64(cell.Y),
		Opacity: 1,
	}
}

func (e *Engine) burst(cell types.Point, count int, color entity.Color) {
	e.particleMgr.Burst(float64(cell.X)+0.5, float64(cell.Y)+0.5, count, color)
}
