package wkb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gridgeo/wkbraster/raster"
)

// Decoder reads serialized rasters from a stream.
type Decoder struct {
	rd io.Reader

	// IgnoreVersion accepts rasters whose header carries an unknown format
	// version instead of failing with ErrUnsupportedVersion. Decoding then
	// proceeds on the revision-0 layout, which is all this package knows.
	IgnoreVersion bool
}

// NewDecoder returns a decoder reading from rd.
func NewDecoder(rd io.Reader) *Decoder {
	return &Decoder{rd: rd}
}

// Decode reads one complete raster. It returns io.EOF when the stream ends
// cleanly before the first byte; any later short read is a format error and
// leaves the stream position unspecified.
func (d *Decoder) Decode() (*raster.Raster, error) {
	ord, err := d.readMarker()
	if err != nil {
		return nil, err
	}
	rd := &reader{r: d.rd, ord: ord}

	h, err := decodeHeader(rd)
	if err != nil {
		if isShortRead(err) {
			return nil, fmt.Errorf("raster header: %w", ErrMalformedHeader)
		}
		return nil, err
	}
	if h.Version != 0 && !d.IgnoreVersion {
		return nil, fmt.Errorf("version %d: %w", h.Version, ErrUnsupportedVersion)
	}

	r := &raster.Raster{Header: h, Bands: make([]raster.Band, 0, h.NumBands)}
	for i := 0; i < int(h.NumBands); i++ {
		b, err := decodeBand(rd, h.Width, h.Height)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i+1, err)
		}
		r.Bands = append(r.Bands, b)
	}
	return r, nil
}

// readMarker resolves the stream's byte order from the leading marker byte.
func (d *Decoder) readMarker() (binary.ByteOrder, error) {
	var buf [1]byte
	if _, err := io.ReadFull(d.rd, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	switch buf[0] {
	case markerBigEndian:
		return binary.BigEndian, nil
	case markerLittleEndian:
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("endianness marker 0x%02X: %w", buf[0], ErrMalformedHeader)
	}
}

func decodeHeader(rd *reader) (raster.Header, error) {
	var h raster.Header
	var err error
	if h.Version, err = rd.readUint16(); err != nil {
		return h, err
	}
	if h.NumBands, err = rd.readUint16(); err != nil {
		return h, err
	}
	if h.ScaleX, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.ScaleY, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.IPX, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.IPY, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.SkewX, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.SkewY, err = rd.readFloat64(); err != nil {
		return h, err
	}
	if h.SRID, err = rd.readInt32(); err != nil {
		return h, err
	}
	if h.Width, err = rd.readUint16(); err != nil {
		return h, err
	}
	if h.Height, err = rd.readUint16(); err != nil {
		return h, err
	}
	return h, nil
}

// decodeBand reads one band: flag byte, unconditional nodata value, then the
// payload variant the flags select.
func decodeBand(rd *reader, width, height uint16) (raster.Band, error) {
	fb, err := rd.readUint8()
	if err != nil {
		return raster.Band{}, payloadErr("flag byte", err)
	}
	flags, err := parseFlags(fb)
	if err != nil {
		return raster.Band{}, err
	}

	nodata, err := rd.readValue(flags.pixType)
	if err != nil {
		return raster.Band{}, payloadErr("nodata value", err)
	}

	b := raster.Band{
		HasNodata: flags.hasNodata,
		AllNodata: flags.allNodata,
		Nodata:    nodata,
	}

	if flags.offline {
		wireNo, err := rd.readUint8()
		if err != nil {
			return raster.Band{}, payloadErr("offline band number", err)
		}
		path, err := rd.readCString()
		if err != nil {
			return raster.Band{}, payloadErr("offline path", err)
		}
		if !utf8.Valid(path) {
			return raster.Band{}, fmt.Errorf("offline path: %w", raster.ErrInvalidPath)
		}
		b.Data = &raster.OfflineRef{
			Type:   flags.pixType,
			BandNo: int(wireNo) + 1, // wire value is 0-based
			Path:   string(path),
		}
		return b, nil
	}

	data := make([]byte, int(width)*int(height)*flags.pixType.Size())
	if err := rd.read(data); err != nil {
		return raster.Band{}, payloadErr("pixel data", err)
	}
	px, err := raster.PixelsFromBytes(flags.pixType, width, height, data, rd.ord)
	if err != nil {
		return raster.Band{}, err
	}
	b.Data = px
	return b, nil
}

// payloadErr maps a short read inside a band to ErrTruncatedPayload and
// passes transport failures through unchanged.
func payloadErr(what string, err error) error {
	if isShortRead(err) {
		return fmt.Errorf("%s: %w", what, ErrTruncatedPayload)
	}
	return err
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
