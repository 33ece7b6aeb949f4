package list

import (
	"errors"
	"fmt"
)

// ErrPositionOutOfRange is wrapped by every *PositionError.
var ErrPositionOutOfRange = errors.New("position out of range")

// A PositionError reports a position that does not fit the list.
// Size is the size of the list when the operation was attempted: for Node
// methods it is the subject's Size, for List methods the List's Len.
type PositionError struct {
	Op       string
	Position int
	Size     int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("list: %s: position %d out of range for list of size %d",
		e.Op, e.Position, e.Size)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}
