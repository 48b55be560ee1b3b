package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

type EventType int

const (
	EventEat EventType = iota
	EventPowerUp
	EventPowerUpExpired
	EventGameOver
	EventCountdownTick
	EventGameStart
	EventWrap
	EventPause
	EventResume
	EventSpecialSpawned
	EventSpecialExpired
)

type Event struct {
	Type      EventType
	Cell      types.Point
	Points    int                // eat, powerup
	Kind      entity.PowerUpKind // powerup, special spawn/expiry
	Countdown int                // countdown tick
	Summary   *manager.Summary   // game over
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the engine's goroutine.
// Handlers must not block.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every listed type
func (eb *EventBus) SubscribeAll(fn EventHandler, kinds ...EventType) {
	for _, t := range kinds {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
