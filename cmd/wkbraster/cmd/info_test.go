package cmd

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gridgeo/wkbraster/raster"
)

func infoTestRaster(t *testing.T) *raster.Raster {
	t.Helper()
	r := raster.New(2, 2)
	r.SRID = 4326
	r.ScaleX, r.ScaleY = 0.5, -0.5
	r.IPX, r.IPY = -180, 90

	px, err := raster.NewPixels(raster.PT8BUI, 2, 2)
	if err != nil {
		t.Fatalf("NewPixels failed: %v", err)
	}
	r.AddBand(raster.Band{HasNodata: true, Nodata: 0, Data: px})
	r.AddBand(raster.Band{Data: &raster.OfflineRef{Type: raster.PT32BF, BandNo: 3, Path: "/data/x.tif"}})
	return r
}

func TestWriteInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfo(&buf, infoTestRaster(t)); err != nil {
		t.Fatalf("writeInfo failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Size:    2x2",
		"SRID:    4326",
		"Scale:   0.5, -0.5",
		"Extent:  -180 89, -179 90",
		"Bands:   2",
		"band 1: 8BUI inline nodata=0",
		"band 2: 32BF offline band 3 of /data/x.tif",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestWriteInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfoJSON(&buf, infoTestRaster(t)); err != nil {
		t.Fatalf("writeInfoJSON failed: %v", err)
	}

	var got rasterInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Width != 2 || got.Height != 2 || got.SRID != 4326 {
		t.Errorf("header = %dx%d srid %d, want 2x2 srid 4326", got.Width, got.Height, got.SRID)
	}
	if got.Extent != [4]float64{-180, 89, -179, 90} {
		t.Errorf("extent = %v, want [-180 89 -179 90]", got.Extent)
	}
	if len(got.Bands) != 2 {
		t.Fatalf("bands = %d, want 2", len(got.Bands))
	}
	if got.Bands[0].Nodata == nil || *got.Bands[0].Nodata != 0 {
		t.Errorf("band 1 nodata = %v, want 0", got.Bands[0].Nodata)
	}
	if !got.Bands[1].Offline || got.Bands[1].RefBand != 3 || got.Bands[1].Path != "/data/x.tif" {
		t.Errorf("band 2 = %+v, want offline ref to band 3 of /data/x.tif", got.Bands[1])
	}
}

func TestBandLineAllNodata(t *testing.T) {
	px, err := raster.NewPixels(raster.PT1BB, 1, 1)
	if err != nil {
		t.Fatalf("NewPixels failed: %v", err)
	}
	b := raster.Band{HasNodata: true, AllNodata: true, Nodata: 1, Data: px}

	line := bandLine(1, &b)
	if !strings.Contains(line, "(all nodata)") {
		t.Errorf("line %q does not flag the all-nodata band", line)
	}
}

func TestByteOrderFlag(t *testing.T) {
	if ord, err := byteOrder("little"); err != nil || ord != binary.LittleEndian {
		t.Errorf("byteOrder(little) = %v, %v", ord, err)
	}
	if ord, err := byteOrder("big"); err != nil || ord != binary.BigEndian {
		t.Errorf("byteOrder(big) = %v, %v", ord, err)
	}
	if _, err := byteOrder("middle"); err == nil {
		t.Error("byteOrder(middle) succeeded, want error")
	}
}
