package analyzer

import (
	"sort"

	"github.com/vburojevic/reqlog/internal/domain"
)

// TopN is the number of endpoints reported in a result
const TopN = 3

// ErrorTally counts error requests per endpoint and remembers the order in
// which endpoints first appeared, which breaks ties when ranking.
type ErrorTally struct {
	counts map[string]int
	order  []string
	sum    int
}

// NewErrorTally creates an empty tally
func NewErrorTally() *ErrorTally {
	return &ErrorTally{
		counts: make(map[string]int),
	}
}

// Add records one error request for endpoint
func (t *ErrorTally) Add(endpoint string) {
	if _, seen := t.counts[endpoint]; !seen {
		t.order = append(t.order, endpoint)
	}
	t.counts[endpoint]++
	t.sum++
}

// count returns the errors recorded for endpoint
func (t *ErrorTally) count(endpoint string) int {
	return t.counts[endpoint]
}

// Len returns the number of distinct endpoints with at least one error
func (t *ErrorTally) Len() int {
	return len(t.order)
}

// Sum returns the errors recorded across all endpoints
func (t *ErrorTally) Sum() int {
	return t.sum
}

// Top returns up to n endpoints by error count, highest first.
// Equal counts keep first-insertion order.
func (t *ErrorTally) Top(n int) []domain.EndpointErrors {
	if n <= 0 {
		return []domain.EndpointErrors{}
	}

	ranked := make([]domain.EndpointErrors, 0, len(t.order))
	for _, endpoint := range t.order {
		ranked = append(ranked, domain.EndpointErrors{
			Endpoint: endpoint,
			Count:    t.counts[endpoint],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
