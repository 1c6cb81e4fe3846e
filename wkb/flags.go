package wkb

import (
	"fmt"

	"github.com/gridgeo/wkbraster/raster"
)

// Band flag byte layout.
const (
	flagOffline   = 1 << 7
	flagHasNodata = 1 << 6
	flagAllNodata = 1 << 5
	flagReserved  = 1 << 4 // ignored on decode, zero on encode
	flagTypeMask  = 0x0F
)

// bandFlags is the unpacked form of a band's flag byte.
type bandFlags struct {
	offline   bool
	hasNodata bool
	allNodata bool
	pixType   raster.PixelType
}

// parseFlags splits a flag byte. The low nibble is the pixel-type code used
// directly as the table index; codes 11-15 have no entry and are rejected.
// Encoders that wrote the code shifted up by one produced streams this
// function cannot accept.
func parseFlags(b byte) (bandFlags, error) {
	f := bandFlags{
		offline:   b&flagOffline != 0,
		hasNodata: b&flagHasNodata != 0,
		allNodata: b&flagAllNodata != 0,
		pixType:   raster.PixelType(b & flagTypeMask),
	}
	if !f.pixType.Valid() {
		return bandFlags{}, fmt.Errorf("pixel type code %d: %w", b&flagTypeMask, raster.ErrInvalidPixelType)
	}
	return f, nil
}

// pack composes the wire byte with the reserved bit clear.
func (f bandFlags) pack() byte {
	b := byte(f.pixType) & flagTypeMask
	if f.offline {
		b |= flagOffline
	}
	if f.hasNodata {
		b |= flagHasNodata
	}
	if f.allNodata {
		b |= flagAllNodata
	}
	return b
}
