package tablestate

import (
	"context"
	"fmt"
)

// ErrSelectionLimit is returned by RunBulk before any per-item work when
// the selection is larger than the configured maximum. It is the only
// up-front validation error in this package.
var ErrSelectionLimit = fmt.Errorf("selection exceeds the bulk action limit")

// BulkFailure records a single item that could not be processed.
type BulkFailure struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// BulkReport is the per-item accounting of a bulk action.
type BulkReport struct {
	Succeeded []int64       `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

func (r BulkReport) FailedIDs() []int64 {
	ids := make([]int64, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}

func (r BulkReport) AllSucceeded() bool { return len(r.Failed) == 0 }

// BulkAction applies one operation to one id. A returned error is
// recorded as a per-item failure and does not abort the batch.
type BulkAction func(ctx context.Context, id int64) error

// RunBulk iterates the selection sequentially and applies action to each
// id, collecting per-item failures. maxSelection <= 0 means no limit.
// On full success the selection is cleared; on partial failure the failed
// ids become the new selection so the user can retry just those.
func RunBulk(ctx context.Context, sel *SelectionState, maxSelection int, action BulkAction) (BulkReport, error) {
	ids := sel.SelectedIDs()
	if maxSelection > 0 && len(ids) > maxSelection {
		return BulkReport{}, fmt.Errorf("%w: %d selected, limit %d", ErrSelectionLimit, len(ids), maxSelection)
	}

	report := BulkReport{Succeeded: make([]int64, 0, len(ids))}
	for _, id := range ids {
		if err := action(ctx, id); err != nil {
			report.Failed = append(report.Failed, BulkFailure{ID: id, Reason: err.Error()})
			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}

	if report.AllSucceeded() {
		sel.Clear()
	} else {
		sel.Replace(report.FailedIDs())
	}
	return report, nil
}
