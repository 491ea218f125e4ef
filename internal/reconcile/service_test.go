package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
	"github.com/simdocs-io/report-reconciler/internal/notify"
)

type fakeDocStore struct {
	docs       map[uuid.UUID]*entity.Document
	failAssign map[uuid.UUID]error
	assigns    int
	flags      int
}

func newFakeDocStore(docs ...*entity.Document) *fakeDocStore {
	s := &fakeDocStore{
		docs:       map[uuid.UUID]*entity.Document{},
		failAssign: map[uuid.UUID]error{},
	}
	for _, d := range docs {
		s.docs[d.ID] = d
	}
	return s
}

func (s *fakeDocStore) ListAwaiting(context.Context) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range s.docs {
		if d.Status == constants.DocStatusAwaiting && !d.NeedsReview {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeDocStore) ListCompletedByKeys(_ context.Context, keys []string) ([]*entity.Document, error) {
	want := map[string]bool{}
	for _, k := range keys {
		want[k] = true
	}
	var out []*entity.Document
	for _, d := range s.docs {
		if d.Status == constants.DocStatusCompleted && want[d.DocKey] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeDocStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := s.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (s *fakeDocStore) AssignReports(_ context.Context, docID uuid.UUID, fills []match.SlotFill, complete bool) error {
	if err := s.failAssign[docID]; err != nil {
		return err
	}
	s.assigns++
	d := s.docs[docID]
	for _, f := range fills {
		p := f.FilePath
		if f.Slot == constants.SlotAI {
			d.AIReportPath = &p
		} else {
			d.SimilarityReportPath = &p
		}
	}
	if complete {
		d.Status = constants.DocStatusCompleted
	}
	return nil
}

func (s *fakeDocStore) FlagReview(_ context.Context, docID uuid.UUID, reason string) error {
	s.flags++
	d := s.docs[docID]
	d.NeedsReview = true
	d.ReviewReason = &reason
	return nil
}

func (s *fakeDocStore) ClearReview(_ context.Context, docID uuid.UUID) (*entity.Document, error) {
	d := s.docs[docID]
	d.NeedsReview = false
	d.ReviewReason = nil
	return d, nil
}

type fakeUnmatchedStore struct {
	recorded []*entity.UnmatchedReport
	resolved map[uuid.UUID]uuid.UUID
	failNext error
}

func (s *fakeUnmatchedStore) Record(_ context.Context, recs []*entity.UnmatchedReport) error {
	if s.failNext != nil {
		return s.failNext
	}
	s.recorded = append(s.recorded, recs...)
	return nil
}

func (s *fakeUnmatchedStore) List(context.Context, bool) ([]*entity.UnmatchedReport, error) {
	return s.recorded, nil
}

func (s *fakeUnmatchedStore) GetByID(_ context.Context, id uuid.UUID) (*entity.UnmatchedReport, error) {
	for _, r := range s.recorded {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *fakeUnmatchedStore) Resolve(_ context.Context, id, docID uuid.UUID) error {
	if s.resolved == nil {
		s.resolved = map[uuid.UUID]uuid.UUID{}
	}
	s.resolved[id] = docID
	return nil
}

type fakeNotifier struct {
	events []notify.CompletionEvent
	err    error
}

func (n *fakeNotifier) NotifyCompleted(_ context.Context, ev notify.CompletionEvent) error {
	n.events = append(n.events, ev)
	return n.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(docs *fakeDocStore, unmatched *fakeUnmatchedStore, n *fakeNotifier) *Service {
	return NewService(docs, unmatched, n, 5*time.Second, testLogger())
}

func awaitingDoc(name string) *entity.Document {
	return &entity.Document{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Filename:   name,
		DocKey:     match.DocumentKey(name),
		Status:     constants.DocStatusAwaiting,
	}
}

func TestReconcileBatchCompletesDocument(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	docs := newFakeDocStore(d)
	unmatched := &fakeUnmatchedStore{}
	notifier := &fakeNotifier{}
	svc := newTestService(docs, unmatched, notifier)

	res, err := svc.ReconcileBatch(context.Background(), []entity.ReportFile{
		{FileName: "thesis.pdf", FilePath: "s3://r/sim"},
		{FileName: "thesis (1).pdf", FilePath: "s3://r/ai"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.MappedCount)
	assert.Equal(t, 1, res.Stats.CompletedCount)
	assert.Zero(t, res.Stats.ApplyFailures)
	assert.Equal(t, constants.DocStatusCompleted, d.Status)
	require.NotNil(t, d.SimilarityReportPath)
	require.NotNil(t, d.AIReportPath)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, d.ID, notifier.events[0].DocumentID)
	assert.Equal(t, d.CustomerID, notifier.events[0].CustomerID)
	assert.Empty(t, unmatched.recorded)
}

func TestReconcileBatchRecordsUnmatched(t *testing.T) {
	docs := newFakeDocStore()
	unmatched := &fakeUnmatchedStore{}
	svc := newTestService(docs, unmatched, &fakeNotifier{})

	res, err := svc.ReconcileBatch(context.Background(), []entity.ReportFile{
		{FileName: "orphan.pdf", FilePath: "s3://r/1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stats.UnmatchedCount)
	require.Len(t, unmatched.recorded, 1)
	assert.Equal(t, "orphan", unmatched.recorded[0].ReportKey)
	assert.Equal(t, match.ReasonNoDocument, unmatched.recorded[0].Reason)
}

func TestReconcileBatchWriteFailureDemotesMapping(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	docs := newFakeDocStore(d)
	docs.failAssign[d.ID] = errors.New("connection reset")
	unmatched := &fakeUnmatchedStore{}
	notifier := &fakeNotifier{}
	svc := newTestService(docs, unmatched, notifier)

	res, err := svc.ReconcileBatch(context.Background(), []entity.ReportFile{
		{FileName: "thesis.pdf", FilePath: "s3://r/sim"},
		{FileName: "thesis (1).pdf", FilePath: "s3://r/ai"},
	})
	require.NoError(t, err)

	// Not reported as mapped, reports re-queued, failure surfaced in stats,
	// no completion notification.
	assert.Zero(t, res.Stats.MappedCount)
	assert.Equal(t, 2, res.Stats.UnmatchedCount)
	assert.Zero(t, res.Stats.CompletedCount)
	assert.Equal(t, 1, res.Stats.ApplyFailures)
	assert.Empty(t, notifier.events)
	require.Len(t, unmatched.recorded, 2)
	for _, r := range unmatched.recorded {
		assert.Equal(t, match.ReasonApplyFailed, r.Reason)
	}
}

func TestReconcileBatchReplayIsIdempotent(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	docs := newFakeDocStore(d)
	unmatched := &fakeUnmatchedStore{}
	notifier := &fakeNotifier{}
	svc := newTestService(docs, unmatched, notifier)

	batch := []entity.ReportFile{
		{FileName: "thesis.pdf", FilePath: "s3://r/sim"},
		{FileName: "thesis (1).pdf", FilePath: "s3://r/ai"},
	}
	first, err := svc.ReconcileBatch(context.Background(), batch)
	require.NoError(t, err)
	second, err := svc.ReconcileBatch(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, first.Stats.MappedCount, second.Stats.MappedCount)
	assert.Equal(t, first.Stats.UnmatchedCount, second.Stats.UnmatchedCount)
	// One durable assignment, one notification, no duplicates on replay.
	assert.Equal(t, 1, docs.assigns)
	assert.Len(t, notifier.events, 1)
	assert.Zero(t, second.Stats.CompletedCount)
}

func TestReconcileBatchAmbiguousKeyFlagsReview(t *testing.T) {
	a := awaitingDoc("twin.pdf")
	b := awaitingDoc("Twin.pdf")
	docs := newFakeDocStore(a, b)
	unmatched := &fakeUnmatchedStore{}
	svc := newTestService(docs, unmatched, &fakeNotifier{})

	res, err := svc.ReconcileBatch(context.Background(), []entity.ReportFile{
		{FileName: "twin.pdf", FilePath: "s3://r/1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.NeedsReviewCount)
	assert.Equal(t, 2, docs.flags)
	assert.True(t, a.NeedsReview)
	assert.True(t, b.NeedsReview)
	require.NotNil(t, a.ReviewReason)
	assert.NotEmpty(t, *a.ReviewReason)
	require.Len(t, unmatched.recorded, 1)
}

func TestReconcileBatchRejectsEmptyAndMalformed(t *testing.T) {
	svc := newTestService(newFakeDocStore(), &fakeUnmatchedStore{}, &fakeNotifier{})

	_, err := svc.ReconcileBatch(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.ReconcileBatch(context.Background(), []entity.ReportFile{{FileName: "x.pdf"}})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestReconcileBatchNotifierFailureIsSwallowed(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	docs := newFakeDocStore(d)
	notifier := &fakeNotifier{err: errors.New("topic unavailable")}
	svc := newTestService(docs, &fakeUnmatchedStore{}, notifier)

	res, err := svc.ReconcileBatch(context.Background(), []entity.ReportFile{
		{FileName: "thesis.pdf", FilePath: "s3://r/sim"},
		{FileName: "thesis (1).pdf", FilePath: "s3://r/ai"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.CompletedCount)
	assert.Equal(t, constants.DocStatusCompleted, d.Status)
}

func TestAssignUnmatchedCompletesDocument(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim := "s3://r/sim"
	d.SimilarityReportPath = &sim
	docs := newFakeDocStore(d)
	rec := &entity.UnmatchedReport{
		ID:        uuid.New(),
		Filename:  "thesis (9).pdf",
		ReportKey: "thesis",
		FilePath:  "s3://r/ai",
		Reason:    match.ReasonExcessReports,
	}
	unmatched := &fakeUnmatchedStore{recorded: []*entity.UnmatchedReport{rec}}
	notifier := &fakeNotifier{}
	svc := newTestService(docs, unmatched, notifier)

	updated, completed, err := svc.AssignUnmatched(context.Background(), rec.ID, d.ID, "")
	require.NoError(t, err)

	assert.True(t, completed)
	assert.Equal(t, constants.DocStatusCompleted, updated.Status)
	require.NotNil(t, updated.AIReportPath)
	assert.Equal(t, "s3://r/ai", *updated.AIReportPath)
	assert.Equal(t, d.ID, unmatched.resolved[rec.ID])
	assert.Len(t, notifier.events, 1)
}

func TestAssignUnmatchedRejectsResolvedAndCompleted(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	d.Status = constants.DocStatusCompleted
	docs := newFakeDocStore(d)
	resolved := &entity.UnmatchedReport{ID: uuid.New(), Resolved: true, FilePath: "s3://r/x"}
	fresh := &entity.UnmatchedReport{ID: uuid.New(), FilePath: "s3://r/y"}
	unmatched := &fakeUnmatchedStore{recorded: []*entity.UnmatchedReport{resolved, fresh}}
	svc := newTestService(docs, unmatched, &fakeNotifier{})

	_, _, err := svc.AssignUnmatched(context.Background(), resolved.ID, d.ID, "")
	assert.Error(t, err)

	_, _, err = svc.AssignUnmatched(context.Background(), fresh.ID, d.ID, "")
	assert.Error(t, err)
	assert.Empty(t, unmatched.resolved)
}
