package server

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simdocs-io/report-reconciler/internal/common"
)

func TestToStatusMapsErrorTaxonomy(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid input", common.NewAppError("EMPTY_BATCH", "batch contains no report files", common.ErrInvalidInput), codes.InvalidArgument},
		{"not found", common.ErrNotFound, codes.NotFound},
		{"conflict", common.NewAppError("DOC_COMPLETED", "cannot assign report to a completed document", common.ErrConflict), codes.FailedPrecondition},
		{"unauthorized", common.ErrUnauthorized, codes.Unauthenticated},
		{"internal", errors.New("pool exhausted"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := toStatus(tc.err, logger, "reconcile batch")
			assert.Equal(t, tc.want, status.Code(err))
		})
	}
}
