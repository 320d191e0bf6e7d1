package renderer

import "errors"

var (
	ErrNoSurface = errors.New("renderer: no surface defined")
	ErrNoDevice  = errors.New("renderer: no device defined")
	ErrClosed    = errors.New("renderer: renderer has been closed")
)
