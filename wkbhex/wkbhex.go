// Package wkbhex implements Well Known Binary encoding and decoding of
// rasters as hex strings, the form PostGIS returns for raster values cast
// to text.
package wkbhex

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/gridgeo/wkbraster/raster"
	"github.com/gridgeo/wkbraster/wkb"
)

// Encode encodes a raster to a hex string.
func Encode(r *raster.Raster, byteOrder binary.ByteOrder) (string, error) {
	data, err := wkb.Marshal(r, byteOrder)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// Decode decodes a raster from a hex string. Both lower- and uppercase
// digits are accepted.
func Decode(s string) (*raster.Raster, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return wkb.Unmarshal(data)
}
