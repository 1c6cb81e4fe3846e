package imgconv_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gridgeo/wkbraster/imgconv"
	"github.com/gridgeo/wkbraster/raster"
)

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(img.Pix, []byte{10, 20, 30, 40, 50, 60})

	nodata := 0.0
	r, err := imgconv.FromImage(img, imgconv.Options{
		ScaleX: 0.5, ScaleY: -0.5,
		IPX: -180, IPY: 90,
		SRID:   4326,
		Nodata: &nodata,
	})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if r.Width != 3 || r.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", r.Width, r.Height)
	}
	if r.SRID != 4326 || r.ScaleX != 0.5 || r.IPX != -180 {
		t.Errorf("georeferencing not applied: SRID=%d scaleX=%v ipX=%v", r.SRID, r.ScaleX, r.IPX)
	}
	if r.NumBands != 1 {
		t.Fatalf("bands = %d, want 1", r.NumBands)
	}

	b := r.Band(1)
	if !b.HasNodata || b.Nodata != 0 {
		t.Errorf("nodata = %v/%v, want true/0", b.HasNodata, b.Nodata)
	}
	px := b.Pixels()
	if px.Type != raster.PT8BUI {
		t.Errorf("type = %v, want 8BUI", px.Type)
	}
	if !bytes.Equal(px.Data, img.Pix) {
		t.Errorf("pixels = %v, want %v", px.Data, img.Pix)
	}
}

func TestFromImageGraySubimage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	r, err := imgconv.FromImage(sub, imgconv.Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	px := r.Band(1).Pixels()
	want := []byte{5, 6, 9, 10} // rows 1-2, columns 1-2 of the parent
	if !bytes.Equal(px.Data, want) {
		t.Errorf("pixels = %v, want %v", px.Data, want)
	}
}

func TestFromImageGray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0x1234})
	img.SetGray16(1, 0, color.Gray16{Y: 0xFFEE})

	r, err := imgconv.FromImage(img, imgconv.Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	px := r.Band(1).Pixels()
	if px.Type != raster.PT16BUI {
		t.Fatalf("type = %v, want 16BUI", px.Type)
	}
	if v := px.At(0, 0); v != float64(0x1234) {
		t.Errorf("At(0,0) = %v, want %v", v, 0x1234)
	}
	if v := px.At(1, 0); v != float64(0xFFEE) {
		t.Errorf("At(1,0) = %v, want %v", v, 0xFFEE)
	}
}

func TestFromImageRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	img.Set(1, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	r, err := imgconv.FromImage(img, imgconv.Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if r.NumBands != 3 {
		t.Fatalf("bands = %d, want 3", r.NumBands)
	}
	wantBands := [3][2]float64{{200, 1}, {100, 2}, {50, 3}}
	for i, want := range wantBands {
		px := r.Band(i + 1).Pixels()
		if px.Type != raster.PT8BUI {
			t.Errorf("band %d type = %v, want 8BUI", i+1, px.Type)
		}
		if got := [2]float64{px.At(0, 0), px.At(1, 0)}; got != want {
			t.Errorf("band %d = %v, want %v", i+1, got, want)
		}
	}
}

func TestFromImageTooLarge(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 70000, 1))
	if _, err := imgconv.FromImage(img, imgconv.Options{}); err == nil {
		t.Error("FromImage of a 70000-wide image succeeded, want error")
	}
}

func TestGrayImageRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(img.Pix, []byte{0, 64, 128, 192, 255, 7})

	r, err := imgconv.FromImage(img, imgconv.Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	back, err := imgconv.GrayImage(r, 1)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	gray, ok := back.(*image.Gray)
	if !ok {
		t.Fatalf("GrayImage returned %T, want *image.Gray", back)
	}
	if !bytes.Equal(gray.Pix, img.Pix) {
		t.Errorf("pixels = %v, want %v", gray.Pix, img.Pix)
	}
}

func TestGrayImage16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 2))
	img.SetGray16(0, 0, color.Gray16{Y: 0x0102})
	img.SetGray16(1, 1, color.Gray16{Y: 0xFF00})

	r, err := imgconv.FromImage(img, imgconv.Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	back, err := imgconv.GrayImage(r, 1)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	gray, ok := back.(*image.Gray16)
	if !ok {
		t.Fatalf("GrayImage returned %T, want *image.Gray16", back)
	}
	if got := gray.Gray16At(0, 0).Y; got != 0x0102 {
		t.Errorf("Gray16At(0,0) = %#04x, want 0x0102", got)
	}
	if got := gray.Gray16At(1, 1).Y; got != 0xFF00 {
		t.Errorf("Gray16At(1,1) = %#04x, want 0xff00", got)
	}
}

func TestGrayImageWindowed(t *testing.T) {
	r := raster.New(3, 1)
	px, err := raster.NewPixels(raster.PT32BF, 3, 1)
	if err != nil {
		t.Fatalf("NewPixels failed: %v", err)
	}
	px.SetAt(0, 0, 0)
	px.SetAt(1, 0, 5)
	px.SetAt(2, 0, 10)
	r.AddBand(raster.Band{Data: px})

	img, err := imgconv.GrayImage(r, 1)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	gray := img.(*image.Gray)
	want := []byte{0, 128, 255}
	if !bytes.Equal(gray.Pix, want) {
		t.Errorf("windowed pixels = %v, want %v", gray.Pix, want)
	}
}

func TestGrayImageWindowSkipsNodata(t *testing.T) {
	r := raster.New(2, 1)
	px, err := raster.NewPixels(raster.PT16BSI, 2, 1)
	if err != nil {
		t.Fatalf("NewPixels failed: %v", err)
	}
	px.SetAt(0, 0, -9999) // nodata, must not stretch the window
	px.SetAt(1, 0, 40)
	r.AddBand(raster.Band{HasNodata: true, Nodata: -9999, Data: px})

	img, err := imgconv.GrayImage(r, 1)
	if err != nil {
		t.Fatalf("GrayImage failed: %v", err)
	}
	gray := img.(*image.Gray)
	// The only windowed value is 40, so the window is 40..41 and the
	// nodata cell clamps to 0.
	if gray.Pix[0] != 0 {
		t.Errorf("nodata cell = %d, want 0", gray.Pix[0])
	}
	if gray.Pix[1] != 0 {
		t.Errorf("windowed cell = %d, want 0 (bottom of the window)", gray.Pix[1])
	}
}

func TestGrayImageErrors(t *testing.T) {
	r := raster.New(1, 1)
	r.AddBand(raster.Band{Data: &raster.OfflineRef{Type: raster.PT8BUI, BandNo: 1, Path: "/x.tif"}})

	if _, err := imgconv.GrayImage(r, 1); err == nil {
		t.Error("GrayImage of an offline band succeeded, want error")
	}
	if _, err := imgconv.GrayImage(r, 9); err == nil {
		t.Error("GrayImage of a missing band succeeded, want error")
	}
}
