// Package export produces the XLSX workbook staff use to work through the
// manual-resolution queue.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/simdocs-io/report-reconciler/internal/reconcile"
)

// Service is a tiny façade over the unmatched store that renders XLSX bytes.
type Service struct {
	unmatched reconcile.UnmatchedStore
	logger    *slog.Logger
}

func NewService(unmatched reconcile.UnmatchedStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{unmatched: unmatched, logger: logger}
}

// ExportUnmatchedXLSX returns a workbook of queue rows, optionally narrowed
// to unresolved ones.
func (s *Service) ExportUnmatchedXLSX(ctx context.Context, onlyUnresolved bool) ([]byte, error) {
	start := time.Now()

	rows, err := s.unmatched.List(ctx, onlyUnresolved)
	if err != nil {
		return nil, fmt.Errorf("query unmatched reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Unmatched Reports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded File",
		"Identity Key",
		"Storage Path",
		"Reason",
		"Resolved",
		"Assigned Document",
		"Queued At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Filename)
		write(2, r.ReportKey)
		write(3, r.FilePath)
		write(4, r.Reason)
		if r.Resolved {
			write(5, "yes")
		} else {
			write(5, "no")
		}
		if r.DocumentID != nil {
			write(6, r.DocumentID.String())
		} else {
			write(6, "")
		}
		write(7, r.CreatedAt.UTC().Format(time.RFC3339))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("exported unmatched reports",
		"rows", len(rows),
		"only_unresolved", onlyUnresolved,
		"took", time.Since(start),
	)
	return buf.Bytes(), nil
}
