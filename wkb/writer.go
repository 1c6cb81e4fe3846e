package wkb

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gridgeo/wkbraster/raster"
)

// writer encodes fixed-width primitives to a stream in a declared byte
// order. A partial write from the sink is treated as an error by contract.
type writer struct {
	w   io.Writer
	ord binary.ByteOrder
	buf [8]byte
}

func (w *writer) write(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

func (w *writer) writeUint8(v uint8) error {
	w.buf[0] = v
	return w.write(w.buf[:1])
}

func (w *writer) writeUint16(v uint16) error {
	w.ord.PutUint16(w.buf[:2], v)
	return w.write(w.buf[:2])
}

func (w *writer) writeUint32(v uint32) error {
	w.ord.PutUint32(w.buf[:4], v)
	return w.write(w.buf[:4])
}

func (w *writer) writeUint64(v uint64) error {
	w.ord.PutUint64(w.buf[:8], v)
	return w.write(w.buf[:8])
}

func (w *writer) writeInt32(v int32) error {
	return w.writeUint32(uint32(v))
}

func (w *writer) writeFloat64(v float64) error {
	return w.writeUint64(math.Float64bits(v))
}

// writeCString writes s followed by a null terminator. The caller has
// already checked s for embedded null bytes.
func (w *writer) writeCString(s string) error {
	if err := w.write([]byte(s)); err != nil {
		return err
	}
	return w.writeUint8(0)
}

// writeValue narrows v to pixel type t and writes it. Integer targets
// truncate toward zero and wrap on overflow; float32 targets round.
func (w *writer) writeValue(t raster.PixelType, v float64) error {
	switch t {
	case raster.PT1BB, raster.PT2BUI, raster.PT4BUI, raster.PT8BUI, raster.PT8BSI:
		return w.writeUint8(uint8(int64(v)))
	case raster.PT16BSI, raster.PT16BUI:
		return w.writeUint16(uint16(int64(v)))
	case raster.PT32BSI, raster.PT32BUI:
		return w.writeUint32(uint32(int64(v)))
	case raster.PT32BF:
		return w.writeUint32(math.Float32bits(float32(v)))
	case raster.PT64BF:
		return w.writeUint64(math.Float64bits(v))
	}
	return raster.ErrInvalidPixelType
}
