package match

import (
	"fmt"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

// maxReportsPerDocument caps how many batch reports may target one document
// before the engine routes the whole group to manual review.
const maxReportsPerDocument = 2

// Reconcile applies the matching policy to every report group. It is a pure
// function of its inputs: no I/O, no shared state, deterministic for a given
// batch order. keys fixes the walk order (GroupReports returns it in batch
// first-appearance order).
//
// Policy per key, in priority order:
//  1. no awaiting document        -> every report unmatched
//  2. several awaiting documents  -> all flagged for review, reports unmatched
//  3. one awaiting document       -> up to two reports fill the empty slots in
//     fixed order (similarity first); more than two is an anomaly; filling the
//     second slot completes the document
func Reconcile(idx DocumentIndex, groups map[string][]entity.ReportFile, keys []string) Outcome {
	var out Outcome
	for _, key := range keys {
		reports := groups[key]
		out.Result.Stats.TotalReports += len(reports)

		docs := idx.Awaiting[key]
		switch {
		case len(docs) == 0:
			reconcileNoDocument(&out, idx.Completed[key], key, reports)
		case len(docs) > 1:
			reconcileAmbiguous(&out, docs, key, reports)
		default:
			reconcileSingle(&out, docs[0], key, reports)
		}
	}

	out.Result.Stats.MappedCount = len(out.Result.Mapped)
	out.Result.Stats.UnmatchedCount = len(out.Result.Unmatched)
	out.Result.Stats.NeedsReviewCount = len(out.Result.NeedsReview)
	out.Result.Stats.CompletedCount = len(out.Result.Completed)
	return out
}

// reconcileNoDocument handles keys with no awaiting document. A report whose
// path already sits in a slot of a completed document for the key is a replay
// of an applied batch and classifies as mapped with no mutation; everything
// else is unmatched.
func reconcileNoDocument(out *Outcome, completed []*entity.Document, key string, reports []entity.ReportFile) {
	for _, r := range reports {
		if d, slot, ok := holderOf(completed, r.FilePath); ok {
			out.Result.Mapped = append(out.Result.Mapped, Mapping{
				DocumentID:     d.ID,
				Key:            key,
				FileName:       r.FileName,
				FilePath:       r.FilePath,
				Slot:           slot,
				AlreadyApplied: true,
			})
			continue
		}
		reason := ReasonNoDocument
		if len(completed) > 0 {
			reason = ReasonAlreadyCompleted
		}
		out.Result.Unmatched = append(out.Result.Unmatched, UnmatchedEntry{Report: r, Reason: reason})
	}
}

// reconcileAmbiguous handles a data anomaly: distinct awaiting documents
// normalized to the same key. The engine declines to guess; every document is
// flagged and every report is queued for manual assignment.
func reconcileAmbiguous(out *Outcome, docs []*entity.Document, key string, reports []entity.ReportFile) {
	for _, d := range docs {
		out.Result.NeedsReview = append(out.Result.NeedsReview, ReviewFlag{
			DocumentID: d.ID,
			Key:        key,
			Reason:     constants.ReasonDuplicateKey,
		})
		out.Mutations = append(out.Mutations, DocumentMutation{
			Doc:          d,
			Key:          key,
			ReviewReason: constants.ReasonDuplicateKey,
		})
	}
	for _, r := range reports {
		out.Result.Unmatched = append(out.Result.Unmatched, UnmatchedEntry{Report: r, Reason: ReasonAmbiguousKey})
	}
}

// reconcileSingle handles the normal case: exactly one awaiting document for
// the key.
func reconcileSingle(out *Outcome, d *entity.Document, key string, reports []entity.ReportFile) {
	if len(reports) > maxReportsPerDocument {
		reason := fmt.Sprintf("%d reports matched a single awaiting document", len(reports))
		out.Result.NeedsReview = append(out.Result.NeedsReview, ReviewFlag{
			DocumentID: d.ID,
			Key:        key,
			Reason:     reason,
		})
		out.Mutations = append(out.Mutations, DocumentMutation{Doc: d, Key: key, ReviewReason: reason})
		for _, r := range reports {
			out.Result.Unmatched = append(out.Result.Unmatched, UnmatchedEntry{Report: r, Reason: ReasonExcessReports})
		}
		return
	}

	// Track slot state locally so the second report sees the first one's
	// assignment without mutating the input document.
	simPath := d.SimilarityReportPath
	aiPath := d.AIReportPath
	empty := func() (constants.ReportSlot, bool) {
		if simPath == nil || *simPath == "" {
			return constants.SlotSimilarity, true
		}
		if aiPath == nil || *aiPath == "" {
			return constants.SlotAI, true
		}
		return "", false
	}

	var fills []SlotFill
	filledNow := make(map[string]bool)
	replayed := false
	for _, r := range reports {
		// The slot already holds this exact path, so assigning again is a
		// no-op. AlreadyApplied marks only a durable replay; a duplicate of a
		// path first filled within this same batch is not one.
		if slot, ok := slotHolding(simPath, aiPath, r.FilePath); ok {
			durable := !filledNow[r.FilePath]
			out.Result.Mapped = append(out.Result.Mapped, Mapping{
				DocumentID:     d.ID,
				Key:            key,
				FileName:       r.FileName,
				FilePath:       r.FilePath,
				Slot:           slot,
				AlreadyApplied: durable,
			})
			if durable {
				replayed = true
			}
			continue
		}

		slot, ok := empty()
		if !ok {
			// Both slots filled on an AWAITING document should not occur, but
			// an extra report is recorded rather than silently dropped.
			out.Result.Unmatched = append(out.Result.Unmatched, UnmatchedEntry{Report: r, Reason: ReasonSlotsFilled})
			continue
		}
		p := r.FilePath
		if slot == constants.SlotSimilarity {
			simPath = &p
		} else {
			aiPath = &p
		}
		filledNow[p] = true
		fills = append(fills, SlotFill{Slot: slot, FileName: r.FileName, FilePath: p})
		out.Result.Mapped = append(out.Result.Mapped, Mapping{
			DocumentID: d.ID,
			Key:        key,
			FileName:   r.FileName,
			FilePath:   p,
			Slot:       slot,
		})
	}

	bothFilled := simPath != nil && *simPath != "" && aiPath != nil && *aiPath != ""
	complete := bothFilled && (len(fills) > 0 || replayed)
	if len(fills) > 0 || complete {
		// complete with zero fills repairs a torn earlier apply where the
		// slot writes landed but the status transition did not.
		out.Mutations = append(out.Mutations, DocumentMutation{
			Doc:      d,
			Key:      key,
			Fills:    fills,
			Complete: complete,
		})
	}
	if complete {
		out.Result.Completed = append(out.Result.Completed, d)
	}
}

func slotHolding(simPath, aiPath *string, path string) (constants.ReportSlot, bool) {
	if simPath != nil && *simPath == path {
		return constants.SlotSimilarity, true
	}
	if aiPath != nil && *aiPath == path {
		return constants.SlotAI, true
	}
	return "", false
}

func holderOf(docs []*entity.Document, path string) (*entity.Document, constants.ReportSlot, bool) {
	for _, d := range docs {
		if slot, ok := slotHolding(d.SimilarityReportPath, d.AIReportPath, path); ok {
			return d, slot, true
		}
	}
	return nil, "", false
}
