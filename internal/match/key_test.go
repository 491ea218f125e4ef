package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "fileA1.pdf", "filea1"},
		{"keeps duplicate suffix", "fileA1 (1).pdf", "filea1 (1)"},
		{"no extension", "fileA1", "filea1"},
		{"multiple dots strips last only", "report.v2.final.pdf", "report.v2.final"},
		{"trims whitespace", "  Report B .pdf", "report b"},
		{"empty", "", ""},
		{"dot only", ".pdf", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentKey(tt.in))
		})
	}
}

func TestReportKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no counter", "fileA1.pdf", "filea1"},
		{"one counter", "fileA1 (1).pdf", "filea1"},
		{"stacked counters strip one", "fileA1 (1) (2).pdf", "filea1 (1)"},
		{"counter without space", "fileA1(3).pdf", "filea1"},
		{"parens mid-name survive", "file (draft) A.pdf", "file (draft) a"},
		{"non-numeric parens survive", "fileA1 (copy).pdf", "filea1 (copy)"},
		{"no extension with counter", "fileA1 (2)", "filea1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportKey(tt.in))
		})
	}
}

// A name with zero trailing counters must resolve to the same key under both
// functions.
func TestReportKeyMatchesDocumentKeyWithoutCounter(t *testing.T) {
	names := []string{
		"thesis_final.pdf",
		"My Essay.docx",
		"report.v2.final.pdf",
		"noext",
		"file (draft) A.pdf",
	}
	for _, n := range names {
		assert.Equal(t, DocumentKey(n), ReportKey(n), "name %q", n)
	}
}

func TestDocumentKeyIdempotent(t *testing.T) {
	for _, n := range []string{"fileA1 (1).pdf", "My Essay.docx", "plain"} {
		once := DocumentKey(n)
		assert.Equal(t, once, DocumentKey(once), "name %q", n)
	}
}
