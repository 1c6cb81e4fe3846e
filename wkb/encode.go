package wkb

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gridgeo/wkbraster/raster"
)

// Encoder writes serialized rasters to a stream.
type Encoder struct {
	wr     *writer
	marker byte
	err    error
}

// NewEncoder returns an encoder writing to w in the given byte order, which
// must be binary.BigEndian or binary.LittleEndian.
func NewEncoder(w io.Writer, order binary.ByteOrder) *Encoder {
	e := &Encoder{wr: &writer{w: w, ord: order}}
	switch {
	case order == binary.LittleEndian:
		e.marker = markerLittleEndian
	case order == binary.BigEndian:
		e.marker = markerBigEndian
	default:
		e.err = fmt.Errorf("unsupported byte order %v", order)
	}
	return e
}

// Encode validates r and writes it out. Nothing is written when validation
// fails; a write failure midway leaves the sink with a partial raster.
func (e *Encoder) Encode(r *raster.Raster) error {
	if e.err != nil {
		return e.err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if err := e.wr.writeUint8(e.marker); err != nil {
		return err
	}
	if err := encodeHeader(e.wr, r.Header); err != nil {
		return err
	}
	for i := range r.Bands {
		if err := encodeBand(e.wr, &r.Bands[i]); err != nil {
			return fmt.Errorf("band %d: %w", i+1, err)
		}
	}
	return nil
}

func encodeHeader(w *writer, h raster.Header) error {
	if err := w.writeUint16(h.Version); err != nil {
		return err
	}
	if err := w.writeUint16(h.NumBands); err != nil {
		return err
	}
	for _, v := range []float64{h.ScaleX, h.ScaleY, h.IPX, h.IPY, h.SkewX, h.SkewY} {
		if err := w.writeFloat64(v); err != nil {
			return err
		}
	}
	if err := w.writeInt32(h.SRID); err != nil {
		return err
	}
	if err := w.writeUint16(h.Width); err != nil {
		return err
	}
	return w.writeUint16(h.Height)
}

// encodeBand writes one band: flag byte, unconditional nodata value, then
// the payload variant. Validate has already vetted the band.
func encodeBand(w *writer, b *raster.Band) error {
	switch d := b.Data.(type) {
	case *raster.Pixels:
		f := bandFlags{hasNodata: b.HasNodata, allNodata: b.AllNodata, pixType: d.Type}
		if err := w.writeUint8(f.pack()); err != nil {
			return err
		}
		if err := w.writeValue(d.Type, b.Nodata); err != nil {
			return err
		}
		return w.write(d.Bytes(w.ord))
	case *raster.OfflineRef:
		f := bandFlags{offline: true, hasNodata: b.HasNodata, allNodata: b.AllNodata, pixType: d.Type}
		if err := w.writeUint8(f.pack()); err != nil {
			return err
		}
		if err := w.writeValue(d.Type, b.Nodata); err != nil {
			return err
		}
		if err := w.writeUint8(uint8(d.BandNo - 1)); err != nil {
			return err
		}
		return w.writeCString(d.Path)
	default:
		return fmt.Errorf("band has no payload")
	}
}
