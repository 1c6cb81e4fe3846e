package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gridgeo/wkbraster/wkb"
	"github.com/gridgeo/wkbraster/wkbhex"
)

var (
	convertHex    bool
	convertHexOut bool
	convertEndian string
	convertOut    string

	convertCmd = &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a raster with a different byte order",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertHex, "hex", false, "input is hex text")
	convertCmd.Flags().BoolVar(&convertHexOut, "hex-out", false, "write hex text instead of raw bytes")
	convertCmd.Flags().StringVar(&convertEndian, "endian", "little", "output byte order: little or big")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output file; stdout when omitted")
}

func runConvert(cmd *cobra.Command, args []string) error {
	order, err := byteOrder(convertEndian)
	if err != nil {
		return err
	}
	r, err := readRaster(args[0], convertHex)
	if err != nil {
		return err
	}

	if convertHexOut {
		s, err := wkbhex.Encode(r, order)
		if err != nil {
			return err
		}
		return writeOutput(convertOut, []byte(s+"\n"))
	}

	data, err := wkb.Marshal(r, order)
	if err != nil {
		return err
	}
	slog.Debug("re-encoded raster", "endian", convertEndian, "bytes", len(data))
	return writeOutput(convertOut, data)
}
