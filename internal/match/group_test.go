package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

func awaitingDoc(name string) *entity.Document {
	return &entity.Document{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Filename:   name,
		DocKey:     DocumentKey(name),
		Status:     constants.DocStatusAwaiting,
	}
}

func TestBuildDocumentIndexExcludesReviewFlagged(t *testing.T) {
	clean := awaitingDoc("essay_one.pdf")
	flagged := awaitingDoc("essay_two.pdf")
	flagged.NeedsReview = true

	idx := BuildDocumentIndex([]*entity.Document{clean, flagged}, nil)

	assert.Len(t, idx.Awaiting["essay_one"], 1)
	assert.Empty(t, idx.Awaiting["essay_two"])
}

func TestBuildDocumentIndexGroupsSharedKeys(t *testing.T) {
	a := awaitingDoc("essay.pdf")
	b := awaitingDoc("Essay.PDF")

	idx := BuildDocumentIndex([]*entity.Document{a, b}, nil)

	require.Len(t, idx.Awaiting["essay"], 2)
}

func TestGroupReportsPreservesBatchOrder(t *testing.T) {
	batch := []entity.ReportFile{
		{FileName: "essay (1).pdf", FilePath: "s3://r/1"},
		{FileName: "other.pdf", FilePath: "s3://r/2"},
		{FileName: "essay (2).pdf", FilePath: "s3://r/3"},
	}

	groups, keys := GroupReports(BuildDocumentIndex(nil, nil), batch)

	assert.Equal(t, []string{"essay", "other"}, keys)
	require.Len(t, groups["essay"], 2)
	assert.Equal(t, "s3://r/1", groups["essay"][0].FilePath)
	assert.Equal(t, "s3://r/3", groups["essay"][1].FilePath)
	assert.Equal(t, "essay", groups["essay"][0].Key)
}

func TestGroupReportsPrefersExactDocumentName(t *testing.T) {
	idx := BuildDocumentIndex([]*entity.Document{
		awaitingDoc("essay.pdf"),
		awaitingDoc("essay (1).pdf"),
	}, nil)
	batch := []entity.ReportFile{
		{FileName: "essay (1).pdf", FilePath: "s3://r/1"},
		{FileName: "essay (2).pdf", FilePath: "s3://r/2"},
	}

	groups, keys := GroupReports(idx, batch)

	// "essay (1)" names a document, so its counter survives; "essay (2)"
	// names none and falls back to the stripped base.
	assert.Equal(t, []string{"essay (1)", "essay"}, keys)
	require.Len(t, groups["essay (1)"], 1)
	require.Len(t, groups["essay"], 1)
	assert.Equal(t, "s3://r/2", groups["essay"][0].FilePath)
}

func TestCandidateKeysCoverBothResolutions(t *testing.T) {
	batch := []entity.ReportFile{
		{FileName: "essay (1).pdf", FilePath: "s3://r/1"},
		{FileName: "other.pdf", FilePath: "s3://r/2"},
	}

	keys := CandidateKeys(batch)

	assert.ElementsMatch(t, []string{"essay (1)", "essay", "other"}, keys)
}
