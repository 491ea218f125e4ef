package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

func reconcileBatch(idx DocumentIndex, batch ...entity.ReportFile) Outcome {
	groups, keys := GroupReports(idx, batch)
	return Reconcile(idx, groups, keys)
}

func report(name, path string) entity.ReportFile {
	return entity.ReportFile{FileName: name, FilePath: path}
}

// assertConserved checks the conservation law: no report disappears.
func assertConserved(t *testing.T, out Outcome) {
	t.Helper()
	assert.Equal(t, out.Result.Stats.TotalReports,
		len(out.Result.Mapped)+len(out.Result.Unmatched))
}

func TestReconcileNoMatchingDocument(t *testing.T) {
	idx := BuildDocumentIndex(nil, nil)

	out := reconcileBatch(idx, report("orphan.pdf", "s3://r/orphan"))

	require.Len(t, out.Result.Unmatched, 1)
	assert.Equal(t, ReasonNoDocument, out.Result.Unmatched[0].Reason)
	assert.Empty(t, out.Result.Mapped)
	assert.Empty(t, out.Mutations)
	assertConserved(t, out)
}

func TestReconcileAmbiguousIdentityKey(t *testing.T) {
	a := awaitingDoc("essay.pdf")
	b := awaitingDoc("Essay.pdf")
	idx := BuildDocumentIndex([]*entity.Document{a, b}, nil)

	out := reconcileBatch(idx,
		report("essay.pdf", "s3://r/1"),
		report("essay (1).pdf", "s3://r/2"),
	)

	require.Len(t, out.Result.NeedsReview, 2)
	for _, f := range out.Result.NeedsReview {
		assert.Equal(t, constants.ReasonDuplicateKey, f.Reason)
		assert.NotEmpty(t, f.Reason)
	}
	require.Len(t, out.Result.Unmatched, 2)
	for _, u := range out.Result.Unmatched {
		assert.Equal(t, ReasonAmbiguousKey, u.Reason)
	}
	// Mutations carry the review flags, never slot fills.
	require.Len(t, out.Mutations, 2)
	for _, m := range out.Mutations {
		assert.Empty(t, m.Fills)
		assert.NotEmpty(t, m.ReviewReason)
	}
	assertConserved(t, out)
}

func TestReconcileTwoReportsCompleteDocument(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx,
		report("thesis.pdf", "s3://r/sim"),
		report("thesis (1).pdf", "s3://r/ai"),
	)

	require.Len(t, out.Result.Mapped, 2)
	assert.Equal(t, constants.SlotSimilarity, out.Result.Mapped[0].Slot)
	assert.Equal(t, constants.SlotAI, out.Result.Mapped[1].Slot)

	require.Len(t, out.Mutations, 1)
	m := out.Mutations[0]
	assert.True(t, m.Complete)
	require.Len(t, m.Fills, 2)

	require.Len(t, out.Result.Completed, 1)
	assert.Equal(t, d.ID, out.Result.Completed[0].ID)
	assert.Equal(t, 1, out.Result.Stats.CompletedCount)
	assertConserved(t, out)
}

func TestReconcileSingleReportLeavesDocumentAwaiting(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx, report("thesis.pdf", "s3://r/sim"))

	require.Len(t, out.Mutations, 1)
	assert.False(t, out.Mutations[0].Complete)
	require.Len(t, out.Mutations[0].Fills, 1)
	assert.Equal(t, constants.SlotSimilarity, out.Mutations[0].Fills[0].Slot)
	assert.Empty(t, out.Result.Completed)
}

func TestReconcileSecondReportFillsRemainingSlot(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim := "s3://r/sim"
	d.SimilarityReportPath = &sim
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx, report("thesis (1).pdf", "s3://r/ai"))

	require.Len(t, out.Mutations, 1)
	m := out.Mutations[0]
	require.Len(t, m.Fills, 1)
	assert.Equal(t, constants.SlotAI, m.Fills[0].Slot)
	assert.True(t, m.Complete)
	require.Len(t, out.Result.Completed, 1)
}

func TestReconcileExcessReportsFlagReview(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx,
		report("thesis.pdf", "s3://r/1"),
		report("thesis (1).pdf", "s3://r/2"),
		report("thesis (2).pdf", "s3://r/3"),
	)

	require.Len(t, out.Result.NeedsReview, 1)
	assert.Contains(t, out.Result.NeedsReview[0].Reason, "3 reports")
	require.Len(t, out.Result.Unmatched, 3)
	for _, u := range out.Result.Unmatched {
		assert.Equal(t, ReasonExcessReports, u.Reason)
	}
	assert.Empty(t, out.Result.Completed)
	require.Len(t, out.Mutations, 1)
	assert.Empty(t, out.Mutations[0].Fills)
	assertConserved(t, out)
}

func TestReconcileBothSlotsAlreadyFilled(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim, ai := "s3://r/sim", "s3://r/ai"
	d.SimilarityReportPath = &sim
	d.AIReportPath = &ai
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx, report("thesis.pdf", "s3://r/extra"))

	require.Len(t, out.Result.Unmatched, 1)
	assert.Equal(t, ReasonSlotsFilled, out.Result.Unmatched[0].Reason)
	assertConserved(t, out)
}

func TestReconcileReplayPartiallyApplied(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim := "s3://r/sim"
	d.SimilarityReportPath = &sim
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	// Same report again: the slot already holds this path.
	out := reconcileBatch(idx, report("thesis.pdf", "s3://r/sim"))

	require.Len(t, out.Result.Mapped, 1)
	assert.True(t, out.Result.Mapped[0].AlreadyApplied)
	assert.Empty(t, out.Mutations)
	assert.Empty(t, out.Result.Unmatched)
}

func TestReconcileReplayFullyApplied(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim, ai := "s3://r/sim", "s3://r/ai"
	d.SimilarityReportPath = &sim
	d.AIReportPath = &ai
	d.Status = constants.DocStatusCompleted
	idx := BuildDocumentIndex(nil, []*entity.Document{d})

	out := reconcileBatch(idx,
		report("thesis.pdf", "s3://r/sim"),
		report("thesis (1).pdf", "s3://r/ai"),
	)

	// Zero additional mutations, identical mapped classification, and no
	// completion record so no duplicate notification fires.
	assert.Empty(t, out.Mutations)
	require.Len(t, out.Result.Mapped, 2)
	for _, m := range out.Result.Mapped {
		assert.True(t, m.AlreadyApplied)
	}
	assert.Empty(t, out.Result.Completed)
	assertConserved(t, out)
}

func TestReconcileRepairsTornStatusWrite(t *testing.T) {
	// Slot writes landed in an earlier run but the status transition did not.
	d := awaitingDoc("thesis.pdf")
	sim, ai := "s3://r/sim", "s3://r/ai"
	d.SimilarityReportPath = &sim
	d.AIReportPath = &ai
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx, report("thesis.pdf", "s3://r/sim"))

	require.Len(t, out.Mutations, 1)
	assert.Empty(t, out.Mutations[0].Fills)
	assert.True(t, out.Mutations[0].Complete)
	require.Len(t, out.Result.Completed, 1)
}

func TestReconcileNewReportForCompletedDocument(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	sim, ai := "s3://r/sim", "s3://r/ai"
	d.SimilarityReportPath = &sim
	d.AIReportPath = &ai
	d.Status = constants.DocStatusCompleted
	idx := BuildDocumentIndex(nil, []*entity.Document{d})

	out := reconcileBatch(idx, report("thesis.pdf", "s3://r/new"))

	require.Len(t, out.Result.Unmatched, 1)
	assert.Equal(t, ReasonAlreadyCompleted, out.Result.Unmatched[0].Reason)
	assert.Empty(t, out.Mutations)
}

// End-to-end: two customer uploads whose names differ only by a duplicate
// counter, plus a batch whose counters outrun the document names. Every
// report maps: counter-suffixed report names that exactly match a document
// go to that document, the rest fall back to the counter-stripped base.
func TestReconcileStackedCounterBatch(t *testing.T) {
	base := awaitingDoc("report_a.pdf")
	dup := awaitingDoc("report_a (1).pdf")
	idx := BuildDocumentIndex([]*entity.Document{base, dup}, nil)

	out := reconcileBatch(idx,
		report("report_a.pdf", "s3://r/1"),
		report("report_a (1).pdf", "s3://r/2"),
		report("report_a (2).pdf", "s3://r/3"),
	)

	// "report_a (1).pdf" names dup exactly; the other two resolve to base,
	// which completes. dup keeps one empty slot.
	require.Len(t, out.Result.Mapped, 3)
	require.Len(t, out.Result.Completed, 1)
	assert.Equal(t, base.ID, out.Result.Completed[0].ID)

	byDoc := map[string]int{}
	for _, m := range out.Result.Mapped {
		byDoc[m.DocumentID.String()]++
	}
	assert.Equal(t, 2, byDoc[base.ID.String()])
	assert.Equal(t, 1, byDoc[dup.ID.String()])
	assert.Empty(t, out.Result.Unmatched)
	assert.Empty(t, out.Result.NeedsReview)
	assertConserved(t, out)
}

// A report named exactly after a counter-suffixed document belongs to that
// document; the counter is not stripped away from underneath it.
func TestReconcileExactBaseNamePreferred(t *testing.T) {
	base := awaitingDoc("report_a.pdf")
	dup := awaitingDoc("report_a (1).pdf")
	idx := BuildDocumentIndex([]*entity.Document{base, dup}, nil)

	out := reconcileBatch(idx, report("report_a (1).pdf", "s3://r/2"))

	require.Len(t, out.Result.Mapped, 1)
	assert.Equal(t, dup.ID, out.Result.Mapped[0].DocumentID)
	assert.Equal(t, "report_a (1)", out.Result.Mapped[0].Key)
	assert.Empty(t, out.Result.Unmatched)
}

func TestReconcileDuplicatePathWithinBatch(t *testing.T) {
	d := awaitingDoc("thesis.pdf")
	idx := BuildDocumentIndex([]*entity.Document{d}, nil)

	out := reconcileBatch(idx,
		report("thesis.pdf", "s3://r/sim"),
		report("thesis (1).pdf", "s3://r/sim"),
	)

	// The second occurrence is a no-op against the slot just filled, but it
	// is not a replay of a previously durable assignment.
	require.Len(t, out.Result.Mapped, 2)
	assert.False(t, out.Result.Mapped[0].AlreadyApplied)
	assert.False(t, out.Result.Mapped[1].AlreadyApplied)
	require.Len(t, out.Mutations, 1)
	require.Len(t, out.Mutations[0].Fills, 1)
	assert.False(t, out.Mutations[0].Complete)
	assertConserved(t, out)
}

func TestReconcileMixedBatchConservation(t *testing.T) {
	matched := awaitingDoc("good.pdf")
	dupA := awaitingDoc("twin.pdf")
	dupB := awaitingDoc("Twin.pdf")
	crowded := awaitingDoc("crowded.pdf")
	idx := BuildDocumentIndex([]*entity.Document{matched, dupA, dupB, crowded}, nil)

	out := reconcileBatch(idx,
		report("good.pdf", "s3://r/g1"),
		report("twin.pdf", "s3://r/t1"),
		report("orphan.pdf", "s3://r/o1"),
		report("crowded.pdf", "s3://r/c1"),
		report("crowded (1).pdf", "s3://r/c2"),
		report("crowded (2).pdf", "s3://r/c3"),
	)

	assert.Equal(t, 6, out.Result.Stats.TotalReports)
	assert.Equal(t, 1, out.Result.Stats.MappedCount)
	assert.Equal(t, 5, out.Result.Stats.UnmatchedCount)
	assert.Equal(t, 3, out.Result.Stats.NeedsReviewCount)
	assertConserved(t, out)
}
