// Package raster defines the in-memory model for PostGIS-style multi-band
// rasters: a georeferenced header, a pixel-type registry, and per-band
// payloads that are either inline pixel buffers or references into external
// raster files.
package raster

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Header carries the grid geometry and georeferencing shared by every band.
//
// ScaleX, ScaleY, IPX, IPY, SkewX and SkewY are the six affine geotransform
// parameters mapping pixel coordinates to world coordinates; see geo.go for
// the derived helpers. Version must be 0 for the current format revision.
type Header struct {
	Version  uint16
	NumBands uint16
	ScaleX   float64
	ScaleY   float64
	IPX      float64
	IPY      float64
	SkewX    float64
	SkewY    float64
	SRID     int32
	Width    uint16
	Height   uint16
}

// BandData is the payload of one band: either an inline *Pixels buffer or an
// *OfflineRef into an external file. The two variants are mutually exclusive
// and nothing else satisfies the interface.
type BandData interface {
	PixelType() PixelType
	bandData()
}

// OfflineRef references pixel data stored in an external raster file instead
// of inline in the stream.
type OfflineRef struct {
	Type   PixelType
	BandNo int    // 1-based band number within the external file
	Path   string // file path, UTF-8 without embedded null bytes
}

// PixelType returns the element encoding of the referenced band.
func (o *OfflineRef) PixelType() PixelType { return o.Type }

func (o *OfflineRef) bandData() {}

// Band is one channel of a raster.
//
// Nodata is always a concrete number but only significant when HasNodata is
// set. AllNodata marks a band whose every pixel equals the nodata value; it
// is carried as a hint and not checked against the pixel data.
type Band struct {
	HasNodata bool
	AllNodata bool
	Nodata    float64
	Data      BandData
}

// PixelType returns the band's element encoding, or an invalid type when the
// band has no payload.
func (b Band) PixelType() PixelType {
	if b.Data == nil {
		return PixelType(0xFF)
	}
	return b.Data.PixelType()
}

// Pixels returns the inline pixel buffer, or nil for an offline band.
func (b Band) Pixels() *Pixels {
	p, _ := b.Data.(*Pixels)
	return p
}

// Offline returns the offline reference, or nil for an inline band.
func (b Band) Offline() *OfflineRef {
	o, _ := b.Data.(*OfflineRef)
	return o
}

func (b Band) validate(width, height uint16) error {
	switch d := b.Data.(type) {
	case *Pixels:
		if !d.Type.Valid() {
			return fmt.Errorf("pixel type %d: %w", uint8(d.Type), ErrInvalidPixelType)
		}
		if d.Width != width || d.Height != height {
			return fmt.Errorf("buffer is %dx%d, raster is %dx%d: %w", d.Width, d.Height, width, height, ErrBufferSize)
		}
		if want := int(width) * int(height) * d.Type.Size(); len(d.Data) != want {
			return fmt.Errorf("buffer holds %d bytes, want %d: %w", len(d.Data), want, ErrBufferSize)
		}
	case *OfflineRef:
		if !d.Type.Valid() {
			return fmt.Errorf("pixel type %d: %w", uint8(d.Type), ErrInvalidPixelType)
		}
		if d.BandNo < 1 || d.BandNo > 256 {
			return fmt.Errorf("band number %d: %w", d.BandNo, ErrBandNumber)
		}
		if strings.IndexByte(d.Path, 0) >= 0 {
			return fmt.Errorf("path contains a null byte: %w", ErrInvalidPath)
		}
		if !utf8.ValidString(d.Path) {
			return fmt.Errorf("path is not valid UTF-8: %w", ErrInvalidPath)
		}
	case nil:
		return fmt.Errorf("band has no payload")
	}
	return nil
}

// Raster is a decoded multi-band raster. Bands are kept in stream order;
// user-facing band numbering is 1-based.
type Raster struct {
	Header
	Bands []Band
}

// New returns an empty raster with the given pixel dimensions, unit scale
// and the north-up ScaleY convention.
func New(width, height uint16) *Raster {
	return &Raster{Header: Header{ScaleX: 1, ScaleY: -1, Width: width, Height: height}}
}

// AddBand appends b and keeps the header's band count in step.
func (r *Raster) AddBand(b Band) {
	r.Bands = append(r.Bands, b)
	r.NumBands = uint16(len(r.Bands))
}

// Band returns the i-th band using 1-based numbering, or nil when out of
// range.
func (r *Raster) Band(i int) *Band {
	if i < 1 || i > len(r.Bands) {
		return nil
	}
	return &r.Bands[i-1]
}

// Validate checks the structural invariants the wire format requires: the
// header's band count matches the band sequence, inline buffers match the
// raster dimensions, and offline references are encodable.
func (r *Raster) Validate() error {
	if int(r.NumBands) != len(r.Bands) {
		return fmt.Errorf("header declares %d bands, raster has %d: %w", r.NumBands, len(r.Bands), ErrBandCount)
	}
	for i := range r.Bands {
		if err := r.Bands[i].validate(r.Width, r.Height); err != nil {
			return fmt.Errorf("band %d: %w", i+1, err)
		}
	}
	return nil
}
