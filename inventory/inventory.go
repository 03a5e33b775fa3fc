// Package inventory gathers resource listings into workbook-ready sheets.
package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/yairfalse/kirja/pkg/resource"
)

// Source lists resources for one region. Implemented by providers/aws.
type Source interface {
	Region() string
	Scan(ctx context.Context, category string) ([]resource.Resource, error)
}

// Sheet is one workbook sheet: a header row plus data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Report is the ordered collection of sheets produced by one run.
type Report struct {
	Sheets []Sheet
}

// Total returns the number of data rows across all sheets.
func (r *Report) Total() int {
	n := 0
	for _, s := range r.Sheets {
		n += len(s.Rows)
	}
	return n
}

// Collect runs every category against every source and flattens the results
// into sheets. Global categories are scanned once through the first source.
// Any listing failure aborts the run; there is no partial-success mode.
func Collect(ctx context.Context, sources []Source, categories []Category, logger zerolog.Logger) (*Report, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no regions to scan")
	}

	report := &Report{}
	for _, category := range categories {
		sheet := Sheet{Name: category.Sheet, Header: header(category)}

		scanSources := sources
		if category.Global {
			scanSources = sources[:1]
		}

		for _, src := range scanSources {
			logger.Info().
				Str("category", category.Name).
				Str("region", src.Region()).
				Msg("listing resources")

			resources, err := src.Scan(ctx, category.Name)
			if err != nil {
				return nil, fmt.Errorf("list %s in %s: %w", category.Name, src.Region(), err)
			}

			logger.Info().
				Str("category", category.Name).
				Str("region", src.Region()).
				Int("count", len(resources)).
				Msg("listing complete")

			for _, r := range resources {
				sheet.Rows = append(sheet.Rows, row(category, r))
			}
		}

		// Provider ordering is not stable between runs; sorted rows keep
		// repeated runs over identical listings byte-identical.
		sortRows(sheet.Rows)
		report.Sheets = append(report.Sheets, sheet)
	}

	return report, nil
}

func header(c Category) []string {
	h := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		h[i] = col.Header
	}
	return h
}

func row(c Category, r resource.Resource) []string {
	cells := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		cells[i] = col.Value(r)
	}
	return cells
}

func sortRows(rows [][]string) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}
