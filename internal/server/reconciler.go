package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simdocs-io/report-reconciler/constants"
	reconcilerpb "github.com/simdocs-io/report-reconciler/gen/proto/reconciler/v1"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/export"
	"github.com/simdocs-io/report-reconciler/internal/reconcile"
	"github.com/simdocs-io/report-reconciler/internal/utils"
)

// ReconcilerService is the gRPC surface over the reconciliation core.
type ReconcilerService struct {
	reconcilerpb.UnimplementedReconcilerServiceServer
	svc      *reconcile.Service
	exporter *export.Service
	maxBatch int
	logger   *slog.Logger
}

func NewReconcilerService(svc *reconcile.Service, exporter *export.Service, maxBatch int, logger *slog.Logger) *ReconcilerService {
	return &ReconcilerService{
		svc:      svc,
		exporter: exporter,
		maxBatch: maxBatch,
		logger:   logger,
	}
}

func (s *ReconcilerService) ReconcileBatch(ctx context.Context, req *reconcilerpb.ReconcileBatchRequest) (*reconcilerpb.ReconcileBatchResponse, error) {
	files := req.GetFiles()
	if len(files) == 0 {
		return nil, common.InvalidArgumentError("batch contains no report files")
	}
	if s.maxBatch > 0 && len(files) > s.maxBatch {
		return nil, common.InvalidArgumentErrorf("batch exceeds %d reports", s.maxBatch)
	}

	batch := make([]entity.ReportFile, 0, len(files))
	for _, f := range files {
		name := strings.TrimSpace(f.GetFileName())
		path := strings.TrimSpace(f.GetFilePath())
		if name == "" || path == "" {
			return nil, common.InvalidArgumentError("every report needs file_name and file_path")
		}
		batch = append(batch, entity.ReportFile{FileName: name, FilePath: path})
	}

	s.logger.Info("reconciling batch",
		"reports", len(batch),
		"actor", common.ActorIDFromContext(ctx),
	)
	res, err := s.svc.ReconcileBatch(ctx, batch)
	if err != nil {
		return nil, toStatus(err, s.logger, "reconcile batch")
	}
	return utils.ToPBResult(res), nil
}

func (s *ReconcilerService) ListUnmatchedReports(ctx context.Context, req *reconcilerpb.ListUnmatchedReportsRequest) (*reconcilerpb.ListUnmatchedReportsResponse, error) {
	rows, err := s.svc.ListUnmatched(ctx, req.GetOnlyUnresolved())
	if err != nil {
		return nil, toStatus(err, s.logger, "list unmatched reports")
	}
	out := make([]*reconcilerpb.UnmatchedReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBUnmatchedReport(r))
	}
	return &reconcilerpb.ListUnmatchedReportsResponse{Reports: out}, nil
}

func (s *ReconcilerService) AssignUnmatchedReport(ctx context.Context, req *reconcilerpb.AssignUnmatchedReportRequest) (*reconcilerpb.AssignUnmatchedReportResponse, error) {
	unmatchedID, err := parseID(req.GetUnmatchedId(), "unmatched_id")
	if err != nil {
		return nil, err
	}
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	var slot constants.ReportSlot
	switch strings.ToUpper(strings.TrimSpace(req.GetSlot())) {
	case "":
	case string(constants.SlotSimilarity):
		slot = constants.SlotSimilarity
	case string(constants.SlotAI):
		slot = constants.SlotAI
	default:
		return nil, common.InvalidArgumentErrorf("slot must be %s or %s", constants.SlotSimilarity, constants.SlotAI)
	}

	doc, completed, err := s.svc.AssignUnmatched(ctx, unmatchedID, docID, slot)
	if err != nil {
		return nil, toStatus(err, s.logger, "assign unmatched report")
	}
	return &reconcilerpb.AssignUnmatchedReportResponse{
		Document:  utils.ToPBDocument(doc),
		Completed: completed,
	}, nil
}

func (s *ReconcilerService) ClearReviewFlag(ctx context.Context, req *reconcilerpb.ClearReviewFlagRequest) (*reconcilerpb.ClearReviewFlagResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.svc.ClearReview(ctx, docID)
	if err != nil {
		return nil, toStatus(err, s.logger, "clear review flag")
	}
	return &reconcilerpb.ClearReviewFlagResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *ReconcilerService) ExportUnmatchedReports(ctx context.Context, req *reconcilerpb.ExportUnmatchedReportsRequest) (*reconcilerpb.ExportUnmatchedReportsResponse, error) {
	data, err := s.exporter.ExportUnmatchedXLSX(ctx, req.GetOnlyUnresolved())
	if err != nil {
		return nil, toStatus(err, s.logger, "export unmatched reports")
	}
	return &reconcilerpb.ExportUnmatchedReportsResponse{Xlsx: data}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

// toStatus maps service errors onto gRPC codes, logging the internal ones.
func toStatus(err error, logger *slog.Logger, op string) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrConflict):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		logger.Error(op+" failed", "error", err)
		return common.InternalErrorf("%s failed", op)
	}
}
