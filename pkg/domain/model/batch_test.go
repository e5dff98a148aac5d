package model_test

import (
	"testing"

	"github.com/careledger/careledger/pkg/domain/model"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewBatchSummary(t *testing.T) {
	outcomes := []model.OperationOutcome[types.InvoiceID]{
		{ID: 3, Success: true},
		{ID: 1, Success: false, Error: "boom"},
		{ID: 2, Success: true},
	}

	summary := model.NewBatchSummary(outcomes)
	gt.Equal(t, []types.InvoiceID{3, 2}, summary.SuccessfulIDs)
	gt.Equal(t, []types.InvoiceID{1}, summary.FailedIDs)
	gt.Equal(t, 2, summary.SuccessCount())
	gt.Equal(t, 1, summary.FailedCount())

	first, ok := summary.FirstFailure()
	gt.True(t, ok)
	gt.Equal(t, types.InvoiceID(1), first.ID)
	gt.Equal(t, "boom", first.Error)

	succeeded := summary.Succeeded()
	_, has3 := succeeded[3]
	_, has1 := succeeded[1]
	gt.True(t, has3)
	gt.False(t, has1)
}

func TestBatchSummaryNil(t *testing.T) {
	var summary *model.BatchSummary[string]
	gt.Equal(t, 0, summary.SuccessCount())
	gt.Equal(t, 0, summary.FailedCount())
	_, ok := summary.FirstFailure()
	gt.False(t, ok)
	gt.Equal(t, 0, len(summary.Succeeded()))
}

func TestNewBatchSummaryEmpty(t *testing.T) {
	summary := model.NewBatchSummary[types.InvoiceID](nil)
	gt.Equal(t, 0, len(summary.SuccessfulIDs))
	gt.Equal(t, 0, len(summary.FailedIDs))
	_, ok := summary.FirstFailure()
	gt.False(t, ok)
}
