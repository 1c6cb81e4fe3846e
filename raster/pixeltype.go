package raster

// PixelType identifies the physical encoding of one pixel element. The codes
// are the values carried in the low nibble of a band's flag byte and index
// the encoding table directly; a historical variant of the format stored the
// code shifted up by one, and that variant is deliberately not supported.
type PixelType uint8

// Pixel type codes with their PostGIS names.
const (
	// PT1BB - 1-bit boolean, stored as one byte
	PT1BB PixelType = 0

	// PT2BUI - 2-bit unsigned integer, stored as one byte
	PT2BUI PixelType = 1

	// PT4BUI - 4-bit unsigned integer, stored as one byte
	PT4BUI PixelType = 2

	// PT8BSI - 8-bit signed integer
	PT8BSI PixelType = 3

	// PT8BUI - 8-bit unsigned integer
	PT8BUI PixelType = 4

	// PT16BSI - 16-bit signed integer
	PT16BSI PixelType = 5

	// PT16BUI - 16-bit unsigned integer
	PT16BUI PixelType = 6

	// PT32BSI - 32-bit signed integer
	PT32BSI PixelType = 7

	// PT32BUI - 32-bit unsigned integer
	PT32BUI PixelType = 8

	// PT32BF - 32-bit float
	PT32BF PixelType = 9

	// PT64BF - 64-bit float
	PT64BF PixelType = 10
)

// Kind is the numeric category of a pixel type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindUint
	KindInt
	KindFloat
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "unsigned"
	case KindInt:
		return "signed"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// pixelTypes is the single source of truth for physical encodings. Both the
// wire codec and buffer sizing read from it.
var pixelTypes = [...]struct {
	name string
	size int // stored bytes per element
	bits int // logical value width
	kind Kind
}{
	PT1BB:   {"1BB", 1, 1, KindBool},
	PT2BUI:  {"2BUI", 1, 2, KindUint},
	PT4BUI:  {"4BUI", 1, 4, KindUint},
	PT8BSI:  {"8BSI", 1, 8, KindInt},
	PT8BUI:  {"8BUI", 1, 8, KindUint},
	PT16BSI: {"16BSI", 2, 16, KindInt},
	PT16BUI: {"16BUI", 2, 16, KindUint},
	PT32BSI: {"32BSI", 4, 32, KindInt},
	PT32BUI: {"32BUI", 4, 32, KindUint},
	PT32BF:  {"32BF", 4, 32, KindFloat},
	PT64BF:  {"64BF", 8, 64, KindFloat},
}

// Valid reports whether t is one of the 11 defined codes. Flag-byte values
// 11-15 decode to invalid types and must be rejected by callers.
func (t PixelType) Valid() bool {
	return int(t) < len(pixelTypes)
}

// Size returns the stored width of one element in bytes, or 0 for an
// invalid type. Sub-byte types occupy a full byte each.
func (t PixelType) Size() int {
	if !t.Valid() {
		return 0
	}
	return pixelTypes[t].size
}

// Bits returns the logical value width in bits, or 0 for an invalid type.
func (t PixelType) Bits() int {
	if !t.Valid() {
		return 0
	}
	return pixelTypes[t].bits
}

// Kind returns the numeric category of t.
func (t PixelType) Kind() Kind {
	if !t.Valid() {
		return KindInvalid
	}
	return pixelTypes[t].kind
}

// String returns the PostGIS name of the pixel type, e.g. "8BUI".
func (t PixelType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return pixelTypes[t].name
}
