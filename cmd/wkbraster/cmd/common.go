package cmd

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gridgeo/wkbraster/raster"
	"github.com/gridgeo/wkbraster/wkb"
	"github.com/gridgeo/wkbraster/wkbhex"
)

// readRaster loads one raster from a file, or from stdin when the path is
// "-". With hexIn set the input is hex text instead of raw bytes.
func readRaster(path string, hexIn bool) (*raster.Raster, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if hexIn {
		return wkbhex.Decode(strings.TrimSpace(string(data)))
	}
	return wkb.Unmarshal(data)
}

// byteOrder maps the --endian flag values.
func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q, want little or big", name)
	}
}

// writeOutput writes to a file, or to stdout when the path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
