package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
)

// Command is a frontend request that never reaches the engine
type Command int

const (
	CommandNone Command = iota
	CommandToggleSound
	CommandCycleMusic
	CommandVolumeUp
	CommandVolumeDown
	CommandQuit
)

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyUp:    game.ActionUp,
	tcell.KeyDown:  game.ActionDown,
	tcell.KeyLeft:  game.ActionLeft,
	tcell.KeyRight: game.ActionRight,
	tcell.KeyEnter: game.ActionStart,
}

var runeActions = map[rune]game.Action{
	'w': game.ActionUp,
	's': game.ActionDown,
	'a': game.ActionLeft,
	'd': game.ActionRight,
	' ': game.ActionTogglePause,
	'p': game.ActionTogglePause,
	'r': game.ActionStart,
	'1': game.ActionEasy,
	'2': game.ActionMedium,
	'3': game.ActionHard,
}

var runeCommands = map[rune]Command{
	'n': CommandToggleSound,
	'm': CommandCycleMusic,
	'+': CommandVolumeUp,
	'=': CommandVolumeUp,
	'-': CommandVolumeDown,
	'q': CommandQuit,
}

// Translate maps a key press to an engine action or a frontend command.
// At most one of the two is set.
func Translate(key tcell.Key, ch rune) (game.Action, Command) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionNone, CommandQuit
	case tcell.KeyRune:
		if c, ok := runeCommands[unicode.ToLower(ch)]; ok {
			return game.ActionNone, c
		}
		return runeActions[unicode.ToLower(ch)], CommandNone
	}
	return keyActions[key], CommandNone
}
