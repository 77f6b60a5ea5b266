package render

import "errors"

var (
	// ErrBadDimensions reports a zero or negative terminal size.
	// The tick is skipped; the host decides whether to retry or abort.
	ErrBadDimensions = errors.New("render: invalid terminal dimensions")

	// ErrDeviceWrite reports a failed flush to the terminal device.
	// Terminal state after a partial write is unknown, so the pipeline
	// forces a full redraw on the next successful tick instead of retrying.
	ErrDeviceWrite = errors.New("render: device write failed")
)
