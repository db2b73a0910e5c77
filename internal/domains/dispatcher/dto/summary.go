package dto

import "time"

// Summary aggregates the outcomes of one run. Succeeded + len(Failures)
// always equals Total, the number of tasks handed to workers. Tasks never
// submitted because the run was cancelled are counted in Cancelled.
type Summary struct {
	Total     int
	Succeeded int
	Failures  []string
	Cancelled int
	Duration  time.Duration
}

func (s *Summary) Failed() int {
	return len(s.Failures)
}
