package dataset

import (
	"sort"

	"github.com/agentstation/permclean/pkg/schema"
)

// StatusCounts counts rows by observed certification status, indexed by
// fiscal year. Unrecognized statuses are counted too, for audit.
type StatusCounts map[int]map[string]int

// Add increments the count for a status in a fiscal year.
func (s StatusCounts) Add(year int, status string, n int) {
	counts, ok := s[year]
	if !ok {
		counts = make(map[string]int)
		s[year] = counts
	}
	counts[status] += n
}

// Merge folds other into s.
func (s StatusCounts) Merge(other StatusCounts) {
	for year, counts := range other {
		for status, n := range counts {
			s.Add(year, status, n)
		}
	}
}

// Years returns the fiscal years present, ascending.
func (s StatusCounts) Years() []int {
	years := make([]int, 0, len(s))
	for year := range s {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Statuses returns the status columns for rendering: the accepted statuses
// first in their canonical order, then any other observed status sorted.
func (s StatusCounts) Statuses(accepted []string) []string {
	acceptedSet := make(map[string]struct{}, len(accepted))
	columns := make([]string, 0, len(accepted))
	for _, status := range accepted {
		acceptedSet[status] = struct{}{}
		columns = append(columns, status)
	}

	var extra []string
	seen := make(map[string]struct{})
	for _, counts := range s {
		for status := range counts {
			if _, ok := acceptedSet[status]; ok {
				continue
			}
			if _, ok := seen[status]; ok {
				continue
			}
			seen[status] = struct{}{}
			extra = append(extra, status)
		}
	}
	sort.Strings(extra)
	return append(columns, extra...)
}

// AvailabilityTable holds per-column non-missing ratios indexed by fiscal
// year. Ratios are in [0,1]; a column absent from a year's map means the
// column was absent from that year's source file.
type AvailabilityTable map[int]map[schema.Field]float64

// Set records the ratios for a fiscal year.
func (a AvailabilityTable) Set(year int, ratios map[schema.Field]float64) {
	a[year] = ratios
}

// Years returns the fiscal years present, ascending.
func (a AvailabilityTable) Years() []int {
	years := make([]int, 0, len(a))
	for year := range a {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
