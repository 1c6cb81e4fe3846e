// Package pgraster moves rasters in and out of PostGIS raster columns over
// pgx.
package pgraster

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gridgeo/wkbraster/raster"
	"github.com/gridgeo/wkbraster/wkb"
	"github.com/gridgeo/wkbraster/wkbhex"
)

// Querier is the subset of pgx connection behavior this package needs.
// *pgx.Conn and *pgxpool.Pool both satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Fetch runs a query whose first column holds raster WKB bytes, typically
// built with TableSQL, and decodes every row.
func Fetch(ctx context.Context, q Querier, sql string, args ...any) ([]*raster.Raster, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query rasters: %w", err)
	}
	defer rows.Close()

	var rasters []*raster.Raster
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan raster row: %w", err)
		}
		r, err := wkb.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rasters)+1, err)
		}
		rasters = append(rasters, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rasters: %w", err)
	}
	return rasters, nil
}

// FetchHex is Fetch for queries returning the raster as hex text, the form
// `SELECT rast::text` produces.
func FetchHex(ctx context.Context, q Querier, sql string, args ...any) ([]*raster.Raster, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query rasters: %w", err)
	}
	defer rows.Close()

	var rasters []*raster.Raster
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan raster row: %w", err)
		}
		r, err := wkbhex.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rasters)+1, err)
		}
		rasters = append(rasters, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rasters: %w", err)
	}
	return rasters, nil
}

// Insert encodes the raster in the given byte order and stores it in one
// column of one table through ST_RastFromWKB.
func Insert(ctx context.Context, q Querier, table, column string, r *raster.Raster, order binary.ByteOrder) error {
	data, err := wkb.Marshal(r, order)
	if err != nil {
		return err
	}
	sql := insertSQL(table, column)
	if _, err := q.Exec(ctx, sql, data); err != nil {
		return fmt.Errorf("insert raster: %w", err)
	}
	return nil
}

// TableSQL builds the fetch query for one raster column. A non-empty where
// clause is appended verbatim.
func TableSQL(table, column, where string) string {
	sql := fmt.Sprintf("SELECT ST_AsBinary(%s) FROM %s", identifier(column), identifier(table))
	if where != "" {
		sql += " WHERE " + where
	}
	return sql
}

func insertSQL(table, column string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (ST_RastFromWKB($1))",
		identifier(table), identifier(column))
}

// identifier quotes a possibly schema-qualified name part by part.
func identifier(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
