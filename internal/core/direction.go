package core

import "strings"

// Direction is a requested move for an element within its schema.
// Only Up and Down are implemented; Left and Right are accepted but report ErrDirectionNotSupported.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection normalizes user input. Unknown words are passed through and
// rejected later by MoveElement.
func ParseDirection(s string) Direction {
	return Direction(strings.ToLower(strings.TrimSpace(s)))
}

// offset returns the index delta for d, or false when d is not implemented.
func (d Direction) offset() (int, bool) {
	switch d {
	case DirectionUp:
		return -1, true
	case DirectionDown:
		return 1, true
	default:
		return 0, false
	}
}
