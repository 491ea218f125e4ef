package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simdocs-io/report-reconciler/internal/common"
)

func TestParseValidManifest(t *testing.T) {
	m, err := Parse([]byte(`{
		"reports": [
			{"file_name": "thesis.pdf", "file_path": "s3://reports/thesis.pdf"},
			{"file_name": "thesis (1).pdf", "file_path": "s3://reports/thesis-1.pdf"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, m.Reports, 2)
	assert.Equal(t, "thesis.pdf", m.Reports[0].FileName)
	assert.Equal(t, "s3://reports/thesis-1.pdf", m.Reports[1].FilePath)
}

func TestParseRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{"reports": [`},
		{"empty reports", `{"reports": []}`},
		{"missing reports", `{}`},
		{"missing file_path", `{"reports": [{"file_name": "a.pdf"}]}`},
		{"empty file_name", `{"reports": [{"file_name": "", "file_path": "s3://x"}]}`},
		{"unknown field", `{"reports": [{"file_name": "a.pdf", "file_path": "s3://x", "size": 3}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}
