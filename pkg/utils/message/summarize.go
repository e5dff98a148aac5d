package message

import (
	"fmt"
	"strings"

	"github.com/careledger/careledger/pkg/domain/model"
)

const maxReasonLength = 80

// boilerplate phrases that make a reason too vague to show
var boilerplate = []string{
	"An error occurred",
	"Please try again",
}

// Summarize turns a bulk delete summary into one status line and the
// identifiers that should stay selected for retry. A summary without
// outcomes for a non-empty attempt counts as a total failure of
// totalAttempted items.
func Summarize[K comparable](summary *model.BatchSummary[K], totalAttempted int) *model.BatchNotice[K] {
	successCount := summary.SuccessCount()
	failedCount := summary.FailedCount()

	if successCount == 0 && failedCount == 0 && totalAttempted > 0 {
		return &model.BatchNotice[K]{
			Notice: model.Notice{
				Type:    model.DispositionError,
				Message: fmt.Sprintf("Failed to delete %d %s.", totalAttempted, pluralize(totalAttempted == 1)),
			},
			Selection: []K{},
		}
	}

	if failedCount == 0 {
		return &model.BatchNotice[K]{
			Notice: model.Notice{
				Type:    model.DispositionSuccess,
				Message: fmt.Sprintf("%d %s deleted successfully", successCount, pluralize(successCount == 1)),
			},
			Selection: []K{},
		}
	}

	selection := make([]K, failedCount)
	copy(selection, summary.FailedIDs)

	if successCount == 0 {
		msg := fmt.Sprintf("Failed to delete %d %s.", failedCount, pluralize(failedCount == 1))
		if first, ok := summary.FirstFailure(); ok && first.Error != "" {
			if reason := failureReason(first.Error); reason != "" {
				msg += " " + reason
			}
		}
		return &model.BatchNotice[K]{
			Notice:    model.Notice{Type: model.DispositionError, Message: msg},
			Selection: selection,
		}
	}

	return &model.BatchNotice[K]{
		Notice: model.Notice{
			Type:    model.DispositionError,
			Message: fmt.Sprintf("Partially completed: %d deleted, %d failed. Failed invoices remain selected.", successCount, failedCount),
		},
		Selection: selection,
	}
}

// failureReason returns a concise reason for raw, or "" when the normalized
// reason is generic or too long to be useful.
func failureReason(raw string) string {
	reason := NormalizeMessage(raw, Write)
	if len(reason) > maxReasonLength {
		return ""
	}
	for _, phrase := range boilerplate {
		if strings.Contains(reason, phrase) {
			return ""
		}
	}
	return reason
}
