package raster

import "errors"

var (
	// ErrInvalidPixelType is returned when a pixel-type code is outside the
	// encoding table
	ErrInvalidPixelType = errors.New("invalid pixel type")

	// ErrBandCount is returned when a raster's band sequence does not match
	// the band count its header declares
	ErrBandCount = errors.New("inconsistent band count")

	// ErrBandNumber is returned when an offline band number cannot be
	// represented on the wire (valid range 1-256)
	ErrBandNumber = errors.New("offline band number out of range")

	// ErrInvalidPath is returned when an offline path contains a null byte
	// or is not valid UTF-8
	ErrInvalidPath = errors.New("invalid offline path")

	// ErrBufferSize is returned when an inline pixel buffer does not hold
	// exactly width*height elements
	ErrBufferSize = errors.New("pixel buffer size mismatch")
)
