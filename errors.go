package backdrop

import "errors"

var (
	// ErrMissingEngine is returned by BuildView when no engine is supplied.
	ErrMissingEngine = errors.New("backdrop: missing rendering engine")

	// ErrInvalidViewport is returned when neither the window nor the screen
	// reports a usable size, or the width is too small to hold one cell.
	ErrInvalidViewport = errors.New("backdrop: invalid viewport")

	// ErrDegenerateGrid is returned when the grid has too few cells to leave
	// the interaction border, or a background is too small to tile it.
	ErrDegenerateGrid = errors.New("backdrop: degenerate grid")

	// ErrUnknownBackground is returned when a background id has no loaded texture.
	ErrUnknownBackground = errors.New("backdrop: unknown background")

	// ErrStaleGrid is returned when the sprite grids were built by different
	// layout passes and can no longer be indexed together.
	ErrStaleGrid = errors.New("backdrop: sprite grids from different layout epochs")

	// ErrTransitionBusy is returned under PolicyIgnore while a transition runs.
	ErrTransitionBusy = errors.New("backdrop: transition in progress")
)
