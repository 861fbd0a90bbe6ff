package paint

import "errors"

// Package errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("paint: invalid dimensions")

	// ErrSnapshotMismatch is returned when a snapshot does not match the
	// surface it is restored into.
	ErrSnapshotMismatch = errors.New("paint: snapshot dimensions do not match surface")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("paint: invalid color")

	// ErrInvalidWidth is returned for brush or eraser widths below 1.
	ErrInvalidWidth = errors.New("paint: invalid width")

	// ErrUnknownTool is returned when a tool name is not recognized.
	ErrUnknownTool = errors.New("paint: unknown tool")

	// ErrUnsupportedFormat is returned when no encoder is registered for a format.
	ErrUnsupportedFormat = errors.New("paint: unsupported format")

	// ErrNoCapture is returned when no region has been selected.
	ErrNoCapture = errors.New("paint: no captured region")
)
