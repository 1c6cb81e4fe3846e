package raster

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Pixels is a dense row-major pixel buffer for one inline band. Row 0 is the
// topmost row and element 0 of a row is the leftmost column.
//
// Elements are kept little-endian regardless of the byte order they were
// decoded from, so rasters read from big- and little-endian streams compare
// equal. Bytes converts back to a requested wire order.
type Pixels struct {
	Type   PixelType
	Width  uint16
	Height uint16
	Data   []byte // Width*Height*Type.Size() bytes, little-endian elements
}

// NewPixels allocates a zeroed buffer for width*height elements of type t.
func NewPixels(t PixelType, width, height uint16) (*Pixels, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("pixel type %d: %w", uint8(t), ErrInvalidPixelType)
	}
	return &Pixels{
		Type:   t,
		Width:  width,
		Height: height,
		Data:   make([]byte, int(width)*int(height)*t.Size()),
	}, nil
}

// PixelsFromBytes builds a buffer from raw element bytes laid out in the
// given byte order. The data is copied and converted to the canonical
// little-endian layout; its length must be exactly width*height*t.Size().
func PixelsFromBytes(t PixelType, width, height uint16, data []byte, order binary.ByteOrder) (*Pixels, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("pixel type %d: %w", uint8(t), ErrInvalidPixelType)
	}
	want := int(width) * int(height) * t.Size()
	if len(data) != want {
		return nil, fmt.Errorf("pixel data is %d bytes, want %d: %w", len(data), want, ErrBufferSize)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	if order == binary.BigEndian {
		swapElements(buf, t.Size())
	}
	return &Pixels{Type: t, Width: width, Height: height, Data: buf}, nil
}

// PixelType returns the element encoding of the buffer.
func (p *Pixels) PixelType() PixelType { return p.Type }

func (p *Pixels) bandData() {}

// Len returns the number of elements.
func (p *Pixels) Len() int {
	return int(p.Width) * int(p.Height)
}

// Row returns the raw little-endian bytes of row y. The slice aliases the
// buffer.
func (p *Pixels) Row(y int) []byte {
	stride := int(p.Width) * p.Type.Size()
	return p.Data[y*stride : (y+1)*stride]
}

// At returns the element at column x of row y widened to float64. The
// widening is exact for every pixel type. Out-of-range coordinates panic.
func (p *Pixels) At(x, y int) float64 {
	i := (y*int(p.Width) + x) * p.Type.Size()
	switch p.Type {
	case PT1BB, PT2BUI, PT4BUI, PT8BUI:
		return float64(p.Data[i])
	case PT8BSI:
		return float64(int8(p.Data[i]))
	case PT16BSI:
		return float64(int16(binary.LittleEndian.Uint16(p.Data[i:])))
	case PT16BUI:
		return float64(binary.LittleEndian.Uint16(p.Data[i:]))
	case PT32BSI:
		return float64(int32(binary.LittleEndian.Uint32(p.Data[i:])))
	case PT32BUI:
		return float64(binary.LittleEndian.Uint32(p.Data[i:]))
	case PT32BF:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(p.Data[i:])))
	case PT64BF:
		return math.Float64frombits(binary.LittleEndian.Uint64(p.Data[i:]))
	}
	return 0
}

// SetAt stores v at column x of row y, narrowing to the buffer's pixel type.
// Integer targets truncate toward zero and wrap on overflow; float32 targets
// round. Out-of-range coordinates panic.
func (p *Pixels) SetAt(x, y int, v float64) {
	i := (y*int(p.Width) + x) * p.Type.Size()
	switch p.Type {
	case PT1BB, PT2BUI, PT4BUI, PT8BUI, PT8BSI:
		p.Data[i] = uint8(int64(v))
	case PT16BSI, PT16BUI:
		binary.LittleEndian.PutUint16(p.Data[i:], uint16(int64(v)))
	case PT32BSI, PT32BUI:
		binary.LittleEndian.PutUint32(p.Data[i:], uint32(int64(v)))
	case PT32BF:
		binary.LittleEndian.PutUint32(p.Data[i:], math.Float32bits(float32(v)))
	case PT64BF:
		binary.LittleEndian.PutUint64(p.Data[i:], math.Float64bits(v))
	}
}

// Bytes returns a copy of the buffer with elements laid out in the given
// byte order.
func (p *Pixels) Bytes(order binary.ByteOrder) []byte {
	out := make([]byte, len(p.Data))
	copy(out, p.Data)
	if order == binary.BigEndian {
		swapElements(out, p.Type.Size())
	}
	return out
}

// swapElements reverses the bytes of each size-wide element in place.
func swapElements(b []byte, size int) {
	if size < 2 {
		return
	}
	for i := 0; i+size <= len(b); i += size {
		for j, k := i, i+size-1; j < k; j, k = j+1, k-1 {
			b[j], b[k] = b[k], b[j]
		}
	}
}
