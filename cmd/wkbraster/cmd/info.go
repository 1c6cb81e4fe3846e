package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridgeo/wkbraster/raster"
)

var (
	infoHex  bool
	infoJSON bool

	infoCmd = &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header and band summary of a raster",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoHex, "hex", false, "input is hex text")
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print machine-readable JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	r, err := readRaster(args[0], infoHex)
	if err != nil {
		return err
	}
	if infoJSON {
		return writeInfoJSON(os.Stdout, r)
	}
	return writeInfo(os.Stdout, r)
}

func writeInfo(w io.Writer, r *raster.Raster) error {
	env := r.Envelope().Bounds()
	fmt.Fprintf(w, "Size:    %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(w, "Version: %d\n", r.Version)
	fmt.Fprintf(w, "SRID:    %d\n", r.SRID)
	fmt.Fprintf(w, "Scale:   %g, %g\n", r.ScaleX, r.ScaleY)
	fmt.Fprintf(w, "Origin:  %g, %g\n", r.IPX, r.IPY)
	fmt.Fprintf(w, "Skew:    %g, %g\n", r.SkewX, r.SkewY)
	fmt.Fprintf(w, "Extent:  %g %g, %g %g\n", env.Min(0), env.Min(1), env.Max(0), env.Max(1))
	fmt.Fprintf(w, "Bands:   %d\n", r.NumBands)
	for i := range r.Bands {
		fmt.Fprintf(w, "  %s\n", bandLine(i+1, &r.Bands[i]))
	}
	return nil
}

func bandLine(no int, b *raster.Band) string {
	s := fmt.Sprintf("band %d: %s", no, b.PixelType())
	if off := b.Offline(); off != nil {
		s += fmt.Sprintf(" offline band %d of %s", off.BandNo, off.Path)
	} else {
		s += " inline"
	}
	if b.HasNodata {
		s += fmt.Sprintf(" nodata=%g", b.Nodata)
	}
	if b.AllNodata {
		s += " (all nodata)"
	}
	return s
}

type bandInfo struct {
	Band      int      `json:"band"`
	Type      string   `json:"type"`
	Offline   bool     `json:"offline"`
	Path      string   `json:"path,omitempty"`
	RefBand   int      `json:"refBand,omitempty"`
	Nodata    *float64 `json:"nodata,omitempty"`
	AllNodata bool     `json:"allNodata,omitempty"`
}

type rasterInfo struct {
	Version uint16     `json:"version"`
	Width   uint16     `json:"width"`
	Height  uint16     `json:"height"`
	SRID    int32      `json:"srid"`
	ScaleX  float64    `json:"scaleX"`
	ScaleY  float64    `json:"scaleY"`
	IPX     float64    `json:"ipX"`
	IPY     float64    `json:"ipY"`
	SkewX   float64    `json:"skewX"`
	SkewY   float64    `json:"skewY"`
	Extent  [4]float64 `json:"extent"` // minx, miny, maxx, maxy
	Bands   []bandInfo `json:"bands"`
}

func writeInfoJSON(w io.Writer, r *raster.Raster) error {
	env := r.Envelope().Bounds()
	info := rasterInfo{
		Version: r.Version,
		Width:   r.Width,
		Height:  r.Height,
		SRID:    r.SRID,
		ScaleX:  r.ScaleX,
		ScaleY:  r.ScaleY,
		IPX:     r.IPX,
		IPY:     r.IPY,
		SkewX:   r.SkewX,
		SkewY:   r.SkewY,
		Extent:  [4]float64{env.Min(0), env.Min(1), env.Max(0), env.Max(1)},
	}
	for i := range r.Bands {
		b := &r.Bands[i]
		bi := bandInfo{
			Band:      i + 1,
			Type:      b.PixelType().String(),
			AllNodata: b.AllNodata,
		}
		if off := b.Offline(); off != nil {
			bi.Offline = true
			bi.Path = off.Path
			bi.RefBand = off.BandNo
		}
		if b.HasNodata {
			nd := b.Nodata
			bi.Nodata = &nd
		}
		info.Bands = append(info.Bands, bi)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
