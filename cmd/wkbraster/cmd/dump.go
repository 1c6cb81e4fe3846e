package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gridgeo/wkbraster/imgconv"
)

var (
	dumpHex  bool
	dumpRaw  bool
	dumpBand int
	dumpOut  string

	dumpCmd = &cobra.Command{
		Use:   "dump FILE",
		Short: "Export one band as PNG or raw pixel bytes",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&dumpHex, "hex", false, "input is hex text")
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "write the little-endian pixel buffer instead of PNG")
	dumpCmd.Flags().IntVarP(&dumpBand, "band", "b", 1, "band number to export")
	dumpCmd.Flags().StringVarP(&dumpOut, "output", "o", "", "output file; stdout when omitted")
}

func runDump(cmd *cobra.Command, args []string) error {
	r, err := readRaster(args[0], dumpHex)
	if err != nil {
		return err
	}

	if dumpRaw {
		b := r.Band(dumpBand)
		if b == nil {
			return fmt.Errorf("raster has no band %d", dumpBand)
		}
		px := b.Pixels()
		if px == nil {
			return fmt.Errorf("band %d is offline, no pixels to dump", dumpBand)
		}
		slog.Debug("dumping raw band", "band", dumpBand, "bytes", px.Len())
		return writeOutput(dumpOut, px.Data)
	}

	img, err := imgconv.GrayImage(r, dumpBand)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	slog.Debug("dumping band as PNG", "band", dumpBand, "bytes", buf.Len())
	return writeOutput(dumpOut, buf.Bytes())
}
