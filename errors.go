package compositor

import "errors"

// Common errors returned by GraphicsContext operations.
var (
	// ErrNilContext3D is returned when a nil GPU sub-context is passed to
	// NewAcceleratedContext. The accelerated factory requires a fully formed,
	// ready-to-use sub-context; it never silently degrades to software mode.
	ErrNilContext3D = errors.New("compositor: nil Context3D")

	// ErrContextClosed is returned when operations are attempted on a
	// GraphicsContext after Close.
	ErrContextClosed = errors.New("compositor: graphics context is closed")

	// ErrInvalidDimensions is returned when a surface width or height is
	// zero or negative.
	ErrInvalidDimensions = errors.New("compositor: invalid dimensions")
)
