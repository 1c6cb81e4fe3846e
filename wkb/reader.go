package wkb

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gridgeo/wkbraster/raster"
)

// reader decodes fixed-width primitives from a stream in a declared byte
// order. Short reads surface as io.EOF or io.ErrUnexpectedEOF; the decode
// layer maps them to format errors.
type reader struct {
	r   io.Reader
	ord binary.ByteOrder
	buf [8]byte
}

func (r *reader) read(p []byte) error {
	_, err := io.ReadFull(r.r, p)
	return err
}

func (r *reader) readUint8() (uint8, error) {
	if err := r.read(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func (r *reader) readUint16() (uint16, error) {
	if err := r.read(r.buf[:2]); err != nil {
		return 0, err
	}
	return r.ord.Uint16(r.buf[:2]), nil
}

func (r *reader) readUint32() (uint32, error) {
	if err := r.read(r.buf[:4]); err != nil {
		return 0, err
	}
	return r.ord.Uint32(r.buf[:4]), nil
}

func (r *reader) readUint64() (uint64, error) {
	if err := r.read(r.buf[:8]); err != nil {
		return 0, err
	}
	return r.ord.Uint64(r.buf[:8]), nil
}

func (r *reader) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}

func (r *reader) readFloat64() (float64, error) {
	v, err := r.readUint64()
	return math.Float64frombits(v), err
}

// readCString consumes bytes up to and including a null terminator and
// returns the bytes before it.
func (r *reader) readCString() ([]byte, error) {
	var s []byte
	for {
		b, err := r.readUint8()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return s, nil
		}
		s = append(s, b)
	}
}

// readValue reads one primitive of pixel type t and widens it to float64.
// The widening is exact for every type in the table.
func (r *reader) readValue(t raster.PixelType) (float64, error) {
	switch t {
	case raster.PT1BB, raster.PT2BUI, raster.PT4BUI, raster.PT8BUI:
		v, err := r.readUint8()
		return float64(v), err
	case raster.PT8BSI:
		v, err := r.readUint8()
		return float64(int8(v)), err
	case raster.PT16BSI:
		v, err := r.readUint16()
		return float64(int16(v)), err
	case raster.PT16BUI:
		v, err := r.readUint16()
		return float64(v), err
	case raster.PT32BSI:
		v, err := r.readUint32()
		return float64(int32(v)), err
	case raster.PT32BUI:
		v, err := r.readUint32()
		return float64(v), err
	case raster.PT32BF:
		v, err := r.readUint32()
		return float64(math.Float32frombits(v)), err
	case raster.PT64BF:
		v, err := r.readUint64()
		return math.Float64frombits(v), err
	}
	return 0, raster.ErrInvalidPixelType
}
