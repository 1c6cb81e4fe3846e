package wkb

import "errors"

var (
	// ErrMalformedHeader is returned when the endianness marker is not 0 or
	// 1, or the stream ends inside the fixed header
	ErrMalformedHeader = errors.New("malformed raster header")

	// ErrUnsupportedVersion is returned when the header's version field is
	// not 0; see Decoder.IgnoreVersion
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrTruncatedPayload is returned when the stream ends inside a band
	ErrTruncatedPayload = errors.New("truncated band payload")

	// ErrTrailingData is returned by Unmarshal when input continues past the
	// end of the raster
	ErrTrailingData = errors.New("trailing data after raster")
)
