package match

import (
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

// DocumentIndex groups the current document population by identity key.
// Awaiting holds documents eligible for automatic matching (status AWAITING,
// needs_review false). Completed holds already-completed documents for the
// keys present in a batch; the engine consults it only to recognize replays
// of an assignment that was already durably applied.
type DocumentIndex struct {
	Awaiting  map[string][]*entity.Document
	Completed map[string][]*entity.Document
}

// BuildDocumentIndex groups documents by their stored identity key. Documents
// flagged for review are excluded from the awaiting index entirely; they
// re-enter matching only after staff clear the flag.
func BuildDocumentIndex(awaiting, completed []*entity.Document) DocumentIndex {
	idx := DocumentIndex{
		Awaiting:  make(map[string][]*entity.Document, len(awaiting)),
		Completed: make(map[string][]*entity.Document, len(completed)),
	}
	for _, d := range awaiting {
		if d.NeedsReview {
			continue
		}
		key := d.DocKey
		if key == "" {
			key = DocumentKey(d.Filename)
		}
		idx.Awaiting[key] = append(idx.Awaiting[key], d)
	}
	for _, d := range completed {
		key := d.DocKey
		if key == "" {
			key = DocumentKey(d.Filename)
		}
		idx.Completed[key] = append(idx.Completed[key], d)
	}
	return idx
}

// GroupReports resolves every batch item to an identity key and groups them,
// preserving batch presentation order within each group. The returned key
// slice preserves first-appearance order so that a walk over the groups is
// deterministic for a given batch.
//
// Key resolution consults the index: a report whose extension-stripped base
// exactly names a known document keys to that document, because a trailing
// counter on a document name denotes a literally distinct customer upload.
// Only when no document carries the base name is one trailing counter
// stripped, the convention admin tooling uses to disambiguate report files
// for the same base document.
func GroupReports(idx DocumentIndex, batch []entity.ReportFile) (map[string][]entity.ReportFile, []string) {
	groups := make(map[string][]entity.ReportFile, len(batch))
	keys := make([]string, 0, len(batch))
	for _, f := range batch {
		f.Key = resolveKey(idx, f.FileName)
		if _, seen := groups[f.Key]; !seen {
			keys = append(keys, f.Key)
		}
		groups[f.Key] = append(groups[f.Key], f)
	}
	return groups, keys
}

func resolveKey(idx DocumentIndex, name string) string {
	base := DocumentKey(name)
	if len(idx.Awaiting[base]) > 0 || len(idx.Completed[base]) > 0 {
		return base
	}
	return ReportKey(name)
}

// CandidateKeys returns every identity key a batch item could resolve to,
// before the document index is available. Callers use it to scope the
// completed-document load that feeds BuildDocumentIndex.
func CandidateKeys(batch []entity.ReportFile) []string {
	seen := make(map[string]struct{}, len(batch))
	keys := make([]string, 0, len(batch))
	for _, f := range batch {
		for _, k := range []string{DocumentKey(f.FileName), ReportKey(f.FileName)} {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
