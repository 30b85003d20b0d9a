package draft

import (
	"fmt"

	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
)

// Level grades an Outcome
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelError
)

// Outcome is the result of a lobby mutation the caller relays as one status line.
// Expected conditions (full lobby, banned civ, no bans left) are outcomes, not errors.
type Outcome struct {
	Level   Level
	Code    apperr.Code
	Message string
}

func success(format string, args ...any) Outcome {
	return Outcome{Level: LevelSuccess, Message: fmt.Sprintf(format, args...)}
}

func warning(code apperr.Code, format string, args ...any) Outcome {
	return Outcome{Level: LevelWarning, Code: code, Message: fmt.Sprintf(format, args...)}
}

func failure(code apperr.Code, format string, args ...any) Outcome {
	return Outcome{Level: LevelError, Code: code, Message: fmt.Sprintf(format, args...)}
}

// OK is true for successes and warnings
func (o Outcome) OK() bool {
	return o.Level != LevelError
}

// Err converts a failed outcome into a coded error, nil otherwise
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}
	return apperr.New(o.Code, o.Message)
}

// String renders the status line shown to players
func (o Outcome) String() string {
	switch o.Level {
	case LevelWarning:
		return "WARNING: " + o.Message
	case LevelError:
		return "ERROR: " + o.Message
	default:
		return o.Message
	}
}
