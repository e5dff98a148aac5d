package model

// OperationOutcome is the result of one remote mutation attempt.
// Error is empty whenever Success is true.
type OperationOutcome[K comparable] struct {
	ID      K      `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BatchSummary partitions the outcomes of one batch by success.
// SuccessfulIDs and FailedIDs keep the order of Outcomes.
type BatchSummary[K comparable] struct {
	SuccessfulIDs []K                   `json:"successfulIds"`
	FailedIDs     []K                   `json:"failedIds"`
	Outcomes      []OperationOutcome[K] `json:"results"`
}

// NewBatchSummary builds a summary from outcomes in input order
func NewBatchSummary[K comparable](outcomes []OperationOutcome[K]) *BatchSummary[K] {
	summary := &BatchSummary[K]{
		SuccessfulIDs: make([]K, 0, len(outcomes)),
		FailedIDs:     make([]K, 0),
		Outcomes:      outcomes,
	}
	for _, o := range outcomes {
		if o.Success {
			summary.SuccessfulIDs = append(summary.SuccessfulIDs, o.ID)
		} else {
			summary.FailedIDs = append(summary.FailedIDs, o.ID)
		}
	}
	return summary
}

// SuccessCount returns the number of successful operations
func (s *BatchSummary[K]) SuccessCount() int {
	if s == nil {
		return 0
	}
	return len(s.SuccessfulIDs)
}

// FailedCount returns the number of failed operations
func (s *BatchSummary[K]) FailedCount() int {
	if s == nil {
		return 0
	}
	return len(s.FailedIDs)
}

// FirstFailure returns the first failed outcome in input order
func (s *BatchSummary[K]) FirstFailure() (OperationOutcome[K], bool) {
	if s != nil {
		for _, o := range s.Outcomes {
			if !o.Success {
				return o, true
			}
		}
	}
	return OperationOutcome[K]{}, false
}

// Succeeded returns a lookup set of the successful identifiers
func (s *BatchSummary[K]) Succeeded() map[K]struct{} {
	set := make(map[K]struct{}, s.SuccessCount())
	if s != nil {
		for _, id := range s.SuccessfulIDs {
			set[id] = struct{}{}
		}
	}
	return set
}
