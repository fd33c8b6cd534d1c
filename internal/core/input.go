package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow - advance toward the win line
	ActionDown         // S, J, Down arrow - step back toward the curb
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionReset        // R, Enter - press the reset control after game over
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a moves the player.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// keyActions maps key identifiers to directions. Both DOM-style names and
// the names Bubble Tea reports are accepted.
var keyActions = map[string]Action{
	"ArrowUp":    ActionUp,
	"ArrowDown":  ActionDown,
	"ArrowLeft":  ActionLeft,
	"ArrowRight": ActionRight,
	"up":         ActionUp,
	"down":       ActionDown,
	"left":       ActionLeft,
	"right":      ActionRight,
	"w":          ActionUp,
	"s":          ActionDown,
	"a":          ActionLeft,
	"d":          ActionRight,
	"k":          ActionUp,
	"j":          ActionDown,
	"h":          ActionLeft,
	"l":          ActionRight,
}

// ParseKey maps a key identifier to a direction action.
// Unrecognized identifiers yield ActionNone.
func ParseKey(id string) Action {
	return keyActions[id]
}
