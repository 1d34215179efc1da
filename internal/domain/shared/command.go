package shared

import "time"

// Command is the envelope every workflow receives as input.
// Data carries the command-specific payload; Timestamp and UserID are
// request metadata, not business data.
type Command[T any] struct {
	Data      T
	Timestamp time.Time
	UserID    string
}

// NewCommand wraps a payload in a command envelope stamped with the
// current time.
func NewCommand[T any](data T, userID string) Command[T] {
	return Command[T]{
		Data:      data,
		Timestamp: time.Now(),
		UserID:    userID,
	}
}
