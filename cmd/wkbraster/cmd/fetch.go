package cmd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gridgeo/wkbraster/pgraster"
	"github.com/gridgeo/wkbraster/wkb"
)

var (
	fetchDSN    string
	fetchTable  string
	fetchColumn string
	fetchWhere  string
	fetchOut    string

	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Fetch rasters from a PostGIS table into .wkb files",
		RunE:  runFetch,
	}
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchDSN, "dsn", "", "PostgreSQL connection string; falls back to the dsn config key")
	fetchCmd.Flags().StringVarP(&fetchTable, "table", "t", "", "table holding the raster column")
	fetchCmd.Flags().StringVar(&fetchColumn, "column", "rast", "raster column name")
	fetchCmd.Flags().StringVarP(&fetchWhere, "where", "w", "", "row filter appended as a WHERE clause")
	fetchCmd.Flags().StringVarP(&fetchOut, "output", "o", ".", "directory for the fetched .wkb files")

	viper.BindPFlag("dsn", fetchCmd.Flags().Lookup("dsn"))
}

func runFetch(cmd *cobra.Command, args []string) error {
	dsn := viper.GetString("dsn")
	if dsn == "" {
		return errors.New("no DSN: pass --dsn or set the dsn config key")
	}
	if fetchTable == "" {
		return errors.New("no table: pass --table")
	}

	ctx := cmd.Context()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	sql := pgraster.TableSQL(fetchTable, fetchColumn, fetchWhere)
	slog.Debug("fetching rasters", "sql", sql)
	rasters, err := pgraster.Fetch(ctx, conn, sql)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fetchOut, 0755); err != nil {
		return err
	}
	for i, r := range rasters {
		data, err := wkb.Marshal(r, binary.LittleEndian)
		if err != nil {
			return fmt.Errorf("raster %d: %w", i+1, err)
		}
		path := filepath.Join(fetchOut, fmt.Sprintf("%04d.wkb", i+1))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		slog.Info("wrote raster", "path", path, "bands", r.NumBands, "size", fmt.Sprintf("%dx%d", r.Width, r.Height))
	}
	slog.Info("fetch complete", "count", len(rasters))
	return nil
}
