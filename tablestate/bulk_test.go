package tablestate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBulkFullSuccessClearsSelection(t *testing.T) {
	sel := NewSelectionState()
	sel.Replace([]int64{10, 11, 12})

	var applied []int64
	report, err := RunBulk(context.Background(), sel, 0, func(_ context.Context, id int64) error {
		applied = append(applied, id)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, applied, "items are applied sequentially in selection order")
	assert.Equal(t, []int64{10, 11, 12}, report.Succeeded)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 0, sel.SelectedCount())
}

func TestRunBulkPartialFailureRetainsFailedIDs(t *testing.T) {
	sel := NewSelectionState()
	sel.Replace([]int64{10, 11, 12})

	report, err := RunBulk(context.Background(), sel, 0, func(_ context.Context, id int64) error {
		if id == 11 {
			return errors.New("unauthorized")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int64{10, 12}, report.Succeeded)
	assert.Equal(t, []BulkFailure{{ID: 11, Reason: "unauthorized"}}, report.Failed)

	// Only the failure remains selected for retry.
	assert.Equal(t, []int64{11}, sel.SelectedIDs())
}

func TestRunBulkSelectionLimitBlocksBeforeAnyWork(t *testing.T) {
	sel := NewSelectionState()
	sel.Replace([]int64{1, 2, 3, 4})

	calls := 0
	_, err := RunBulk(context.Background(), sel, 3, func(_ context.Context, _ int64) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrSelectionLimit) {
		t.Fatalf("expected ErrSelectionLimit, got %v", err)
	}
	assert.Equal(t, 0, calls)
	assert.Equal(t, 4, sel.SelectedCount(), "selection untouched when the batch never starts")
}

func TestRunBulkEmptySelection(t *testing.T) {
	sel := NewSelectionState()
	report, err := RunBulk(context.Background(), sel, 10, func(_ context.Context, _ int64) error {
		t.Fatal("action must not run for an empty selection")
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, report.AllSucceeded())
}
