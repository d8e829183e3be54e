package dto

import "blogdeck/tablestate"

// BulkRequestDTO carries the selection a bulk action operates on. The
// ids go through the same normalization as URL-restored state, so
// duplicates and garbage are dropped rather than rejected.
type BulkRequestDTO struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// BulkFailureDTO is one item that could not be processed.
type BulkFailureDTO struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// BulkReportDTO summarizes a bulk action: which ids succeeded, which
// failed and why, and the selection left over for retry.
type BulkReportDTO struct {
	Succeeded []int64          `json:"succeeded"`
	Failed    []BulkFailureDTO `json:"failed"`
	State     TableStateDTO    `json:"state"`
}

func NewBulkReportDTO(report tablestate.BulkReport, snap tablestate.Snapshot) BulkReportDTO {
	succeeded := report.Succeeded
	if succeeded == nil {
		succeeded = []int64{}
	}
	failed := make([]BulkFailureDTO, 0, len(report.Failed))
	for _, f := range report.Failed {
		failed = append(failed, BulkFailureDTO{ID: f.ID, Reason: f.Reason})
	}
	return BulkReportDTO{
		Succeeded: succeeded,
		Failed:    failed,
		State:     NewTableStateDTO(snap),
	}
}

// InlineEditRequestDTO sets one toggleable field to an absolute value.
// Sending the target value instead of "flip" keeps retries and
// out-of-order confirmations idempotent.
type InlineEditRequestDTO struct {
	Field string `json:"field" binding:"required"`
	Value bool   `json:"value"`
}
