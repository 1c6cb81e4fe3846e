package wkbhex_test

import (
	"encoding/binary"
	"reflect"
	"strings"
	"testing"

	"github.com/gridgeo/wkbraster/raster"
	"github.com/gridgeo/wkbraster/wkbhex"
)

func testRaster(t *testing.T) *raster.Raster {
	t.Helper()
	r := raster.New(2, 2)
	r.SRID = 4326
	px, err := raster.NewPixels(raster.PT8BUI, 2, 2)
	if err != nil {
		t.Fatalf("NewPixels failed: %v", err)
	}
	for i, v := range []float64{9, 8, 7, 6} {
		px.SetAt(i%2, i/2, v)
	}
	r.AddBand(raster.Band{HasNodata: true, Nodata: 255, Data: px})
	return r
}

func TestEncodeDecode(t *testing.T) {
	want := testRaster(t)

	s, err := wkbhex.Encode(want, binary.LittleEndian)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(s, "01") {
		t.Errorf("hex = %q, want little-endian marker prefix 01", s[:8])
	}
	if len(s)%2 != 0 {
		t.Errorf("hex length %d is odd", len(s))
	}

	got, err := wkbhex.Decode(s)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("decoded raster differs from the original")
	}
}

func TestDecodeUppercase(t *testing.T) {
	want := testRaster(t)

	s, err := wkbhex.Encode(want, binary.BigEndian)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := wkbhex.Decode(strings.ToUpper(s))
	if err != nil {
		t.Fatalf("Decode of uppercase hex failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("decoded raster differs from the original")
	}
}

func TestDecodeBadHex(t *testing.T) {
	for _, s := range []string{"0", "zz", "01zz"} {
		if _, err := wkbhex.Decode(s); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", s)
		}
	}
}

func TestEncodeInvalidRaster(t *testing.T) {
	r := raster.New(1, 1)
	r.NumBands = 2 // no bands attached

	if _, err := wkbhex.Encode(r, binary.LittleEndian); err == nil {
		t.Error("Encode of inconsistent raster succeeded, want error")
	}
}
