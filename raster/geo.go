package raster

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Transform returns the affine geotransform in GDAL order: origin x, scale x,
// skew x, origin y, skew y, scale y.
func (h Header) Transform() [6]float64 {
	return [6]float64{h.IPX, h.ScaleX, h.SkewX, h.IPY, h.SkewY, h.ScaleY}
}

// PointAt maps a pixel coordinate to world coordinates. Column and row may
// be fractional; (0, 0) is the outer corner of the top-left pixel, so the
// center of pixel (c, r) is PointAt(c+0.5, r+0.5).
func (h Header) PointAt(col, row float64) (x, y float64) {
	x = h.IPX + col*h.ScaleX + row*h.SkewX
	y = h.IPY + col*h.SkewY + row*h.ScaleY
	return x, y
}

// CellOf inverts PointAt, mapping world coordinates to a fractional pixel
// coordinate. ok is false when the geotransform is degenerate.
func (h Header) CellOf(x, y float64) (col, row float64, ok bool) {
	det := h.ScaleX*h.ScaleY - h.SkewX*h.SkewY
	if det == 0 {
		return 0, 0, false
	}
	dx, dy := x-h.IPX, y-h.IPY
	col = (h.ScaleY*dx - h.SkewX*dy) / det
	row = (h.ScaleX*dy - h.SkewY*dx) / det
	return col, row, true
}

// Resolution returns the world-unit size of one pixel along each axis,
// accounting for skew.
func (h Header) Resolution() (sx, sy float64) {
	return math.Hypot(h.ScaleX, h.SkewY), math.Hypot(h.ScaleY, h.SkewX)
}

// Envelope returns the raster's footprint as a closed polygon in world
// coordinates, carrying the header's SRID. The geotransform is a general
// affine map, so the footprint is a parallelogram rather than an axis-aligned
// box.
func (h Header) Envelope() *geom.Polygon {
	w, ht := float64(h.Width), float64(h.Height)
	x0, y0 := h.PointAt(0, 0)
	x1, y1 := h.PointAt(w, 0)
	x2, y2 := h.PointAt(w, ht)
	x3, y3 := h.PointAt(0, ht)
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{x0, y0}, {x1, y1}, {x2, y2}, {x3, y3}, {x0, y0}},
	}).SetSRID(int(h.SRID))
}
