// Package imgconv converts between the standard library's image types and
// rasters.
package imgconv

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/gridgeo/wkbraster/raster"
)

// Options carries the georeferencing applied to rasters built from images.
// Leaving both scales zero keeps the unit north-up default.
type Options struct {
	ScaleX, ScaleY float64
	IPX, IPY       float64
	SkewX, SkewY   float64
	SRID           int32
	Nodata         *float64 // applied to every band when set
}

// FromImage converts an image to a raster. Grayscale images become a single
// 8BUI band, 16-bit grayscale a single 16BUI band, and everything else three
// 8BUI bands holding red, green and blue.
func FromImage(img image.Image, opts Options) (*raster.Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > math.MaxUint16 || h > math.MaxUint16 {
		return nil, fmt.Errorf("image %dx%d exceeds the %d pixel side limit", w, h, math.MaxUint16)
	}

	r := raster.New(uint16(w), uint16(h))
	if opts.ScaleX != 0 || opts.ScaleY != 0 {
		r.ScaleX, r.ScaleY = opts.ScaleX, opts.ScaleY
	}
	r.IPX, r.IPY = opts.IPX, opts.IPY
	r.SkewX, r.SkewY = opts.SkewX, opts.SkewY
	r.SRID = opts.SRID

	switch src := img.(type) {
	case *image.Gray:
		data := make([]byte, w*h)
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(data[y*w:(y+1)*w], src.Pix[off:off+w])
		}
		px, err := raster.PixelsFromBytes(raster.PT8BUI, uint16(w), uint16(h), data, binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		r.AddBand(newBand(px, opts.Nodata))

	case *image.Gray16:
		// Gray16 stores its samples big-endian.
		data := make([]byte, w*h*2)
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(data[y*w*2:(y+1)*w*2], src.Pix[off:off+w*2])
		}
		px, err := raster.PixelsFromBytes(raster.PT16BUI, uint16(w), uint16(h), data, binary.BigEndian)
		if err != nil {
			return nil, err
		}
		r.AddBand(newBand(px, opts.Nodata))

	default:
		var chans [3]*raster.Pixels
		for i := range chans {
			px, err := raster.NewPixels(raster.PT8BUI, uint16(w), uint16(h))
			if err != nil {
				return nil, err
			}
			chans[i] = px
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := y*w + x
				chans[0].Data[i] = byte(cr >> 8)
				chans[1].Data[i] = byte(cg >> 8)
				chans[2].Data[i] = byte(cb >> 8)
			}
		}
		for _, px := range chans {
			r.AddBand(newBand(px, opts.Nodata))
		}
	}

	return r, nil
}

func newBand(px *raster.Pixels, nodata *float64) raster.Band {
	b := raster.Band{Data: px}
	if nodata != nil {
		b.HasNodata = true
		b.Nodata = *nodata
	}
	return b
}

// GrayImage renders one inline band as a grayscale image. 8BUI bands map
// directly to 8-bit gray and 16BUI bands to 16-bit gray; every other kind
// is windowed over the band's observed value range, 8-bit style, with
// nodata cells excluded from the window.
func GrayImage(r *raster.Raster, bandNo int) (image.Image, error) {
	b := r.Band(bandNo)
	if b == nil {
		return nil, fmt.Errorf("raster has no band %d", bandNo)
	}
	px := b.Pixels()
	if px == nil {
		return nil, fmt.Errorf("band %d is offline, nothing to render", bandNo)
	}
	w, h := int(px.Width), int(px.Height)

	switch px.Type {
	case raster.PT8BUI:
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:], px.Row(y))
		}
		return img, nil

	case raster.PT16BUI:
		img := image.NewGray16(image.Rect(0, 0, w, h))
		data := px.Bytes(binary.BigEndian) // Gray16 samples are big-endian
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:], data[y*w*2:(y+1)*w*2])
		}
		return img, nil
	}

	// Auto window: map the observed min/max to 0..255.
	minv, maxv := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := px.At(x, y)
			if b.HasNodata && v == b.Nodata {
				continue
			}
			if v < minv {
				minv = v
			}
			if v > maxv {
				maxv = v
			}
		}
	}
	if minv > maxv {
		minv, maxv = 0, 0 // every cell is nodata
	}
	if maxv == minv {
		maxv = minv + 1
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := (px.At(x, y) - minv) / (maxv - minv)
			if l < 0 {
				l = 0
			}
			if l > 1 {
				l = 1
			}
			img.Pix[y*img.Stride+x] = uint8(l*255 + 0.5)
		}
	}
	return img, nil
}
