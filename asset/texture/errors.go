package texture

import "errors"

var ErrEmptyImage = errors.New("texture: image has zero dimensions")
