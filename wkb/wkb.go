// Package wkb implements the well-known-binary raster format used by
// PostGIS-style raster stores.
//
// A serialized raster opens with a one-byte endianness marker (0 = big
// endian, 1 = little endian) that governs every multi-byte field after it,
// followed by a fixed 60-byte header:
//
//	uint16    version (0 for this revision)
//	uint16    band count
//	float64   scaleX, scaleY, ipX, ipY, skewX, skewY
//	int32     srid
//	uint16    width, height
//
// Each band then contributes a flag byte (bit 7 offline, bit 6 has-nodata,
// bit 5 all-nodata, bit 4 reserved, bits 3-0 pixel type), a nodata value
// sized by the pixel type, and either width*height row-major pixel elements
// or an offline record of one band-number byte plus a null-terminated file
// path.
//
// Decoding and encoding are atomic: a failure at any point yields an error
// and no partial raster, and the stream position is unspecified afterwards.
package wkb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gridgeo/wkbraster/raster"
)

// Endianness marker values.
const (
	markerBigEndian    = 0x00
	markerLittleEndian = 0x01
)

// headerLen is the fixed header size following the endianness marker.
const headerLen = 60

// Marshal encodes r with the given byte order, which must be
// binary.BigEndian or binary.LittleEndian.
func Marshal(r *raster.Raster, order binary.ByteOrder) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, order).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one raster from data. Bytes left over after the
// raster are an error.
func Unmarshal(data []byte) (*raster.Raster, error) {
	rd := bytes.NewReader(data)
	r, err := NewDecoder(rd).Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty input: %w", ErrMalformedHeader)
	}
	if err != nil {
		return nil, err
	}
	if n := rd.Len(); n > 0 {
		return nil, fmt.Errorf("%d bytes after raster end: %w", n, ErrTrailingData)
	}
	return r, nil
}
