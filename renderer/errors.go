package renderer

import "errors"

var (
	ErrSceneNotDefined = errors.New("renderer: no scene defined")
	ErrWindowClosed    = errors.New("renderer: window closed")
)
