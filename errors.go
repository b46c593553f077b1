package navmap

import "errors"

var (
	// ErrConfig indicates invalid map configuration: a degenerate obstacle
	// or one that does not fit within the map bounds.
	ErrConfig = errors.New("invalid map configuration")
)
