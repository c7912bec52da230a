package scene

import "errors"

var (
	ErrNilShape      = errors.New("scene: nil shape")
	ErrInvalidRadius = errors.New("scene: sphere radius must be positive")
)
