// Package stats derives dashboard summaries from a fetched complaint set.
// Everything here is a pure function of its input; a Summary is never an
// independent entity, only a recomputation or a reconciliation of one.
package stats

import (
	"sort"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// Summary holds the per-status counts shown on the dashboards.
type Summary struct {
	Total      int
	Pending    int
	InProgress int
	Resolved   int
}

// Compute counts complaints per status. Complaints with an unrecognised
// status count toward Total but none of the sub-buckets; the predicates are
// independent, so pending+inProgress+resolved <= total always holds, with
// equality when every status is known.
func Compute(complaints []domain.Complaint) Summary {
	s := Summary{Total: len(complaints)}
	for i := range complaints {
		if b := s.bucket(complaints[i].Status); b != nil {
			*b++
		}
	}
	return s
}

// ApplyStatusChange reconciles the summary after one complaint moved from
// oldStatus to newStatus, without refetching. Use either this or a full
// recompute after a mutation, never both.
func (s *Summary) ApplyStatusChange(oldStatus, newStatus domain.Status) {
	if b := s.bucket(oldStatus); b != nil {
		*b--
	}
	if b := s.bucket(newStatus); b != nil {
		*b++
	}
}

// ApplyRemoval reconciles the summary after one complaint with the given
// status was deleted: its bucket and the total each drop by one.
func (s *Summary) ApplyRemoval(status domain.Status) {
	s.Total--
	if b := s.bucket(status); b != nil {
		*b--
	}
}

func (s *Summary) bucket(status domain.Status) *int {
	switch status {
	case domain.StatusPending:
		return &s.Pending
	case domain.StatusInProgress:
		return &s.InProgress
	case domain.StatusResolved:
		return &s.Resolved
	}
	return nil
}

// SortByUrgency returns a copy sorted High before Medium before Low, with
// unknown urgencies last. The sort is stable: equal urgencies keep their
// input order.
func SortByUrgency(complaints []domain.Complaint) []domain.Complaint {
	sorted := make([]domain.Complaint, len(complaints))
	copy(sorted, complaints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Urgency.Weight() > sorted[j].Urgency.Weight()
	})
	return sorted
}

// FilterAll is the filter value that disables status filtering.
const FilterAll = "All"

// FilterByStatus returns the complaints whose status exactly matches the
// filter. "All" is the identity: the input slice comes back unchanged,
// order included.
func FilterByStatus(complaints []domain.Complaint, filter string) []domain.Complaint {
	if filter == FilterAll {
		return complaints
	}
	var matched []domain.Complaint
	for i := range complaints {
		if string(complaints[i].Status) == filter {
			matched = append(matched, complaints[i])
		}
	}
	return matched
}
