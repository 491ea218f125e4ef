package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/simdocs-io/report-reconciler/internal/entity"
)

type stubUnmatchedStore struct {
	rows []*entity.UnmatchedReport
	err  error
}

func (s *stubUnmatchedStore) Record(context.Context, []*entity.UnmatchedReport) error { return nil }
func (s *stubUnmatchedStore) List(context.Context, bool) ([]*entity.UnmatchedReport, error) {
	return s.rows, s.err
}
func (s *stubUnmatchedStore) GetByID(context.Context, uuid.UUID) (*entity.UnmatchedReport, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUnmatchedStore) Resolve(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func TestExportUnmatchedXLSX(t *testing.T) {
	docID := uuid.New()
	store := &stubUnmatchedStore{rows: []*entity.UnmatchedReport{
		{
			Filename:  "orphan.pdf",
			ReportKey: "orphan",
			FilePath:  "s3://reports/orphan.pdf",
			Reason:    "no awaiting document matches report key",
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Filename:   "twin (1).pdf",
			ReportKey:  "twin",
			FilePath:   "s3://reports/twin-1.pdf",
			Reason:     "document identity key is ambiguous",
			Resolved:   true,
			DocumentID: &docID,
			CreatedAt:  time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		},
	}}
	svc := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.ExportUnmatchedXLSX(context.Background(), false)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	const sheet = "Unmatched Reports"
	header, err := wb.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Uploaded File", header)

	name, _ := wb.GetCellValue(sheet, "A2")
	assert.Equal(t, "orphan.pdf", name)
	resolved, _ := wb.GetCellValue(sheet, "E3")
	assert.Equal(t, "yes", resolved)
	assigned, _ := wb.GetCellValue(sheet, "F3")
	assert.Equal(t, docID.String(), assigned)
}

func TestExportUnmatchedXLSXStoreError(t *testing.T) {
	svc := NewService(&stubUnmatchedStore{err: errors.New("db down")}, nil)
	_, err := svc.ExportUnmatchedXLSX(context.Background(), true)
	assert.Error(t, err)
}
