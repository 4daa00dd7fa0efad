package metrics

import "sync"

// InMemoryMetrics implements CheckMetrics with in-process
// counters. It is safe for concurrent use.
type InMemoryMetrics struct {
	mu     sync.RWMutex
	checks map[string]int
	total  int
}

// NewInMemoryMetrics creates an empty InMemoryMetrics.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		checks: make(map[string]int),
	}
}

func (m *InMemoryMetrics) RecordCheck(expression string, outcome Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[expression+":"+string(outcome)]++
	m.total++
}

// Count returns how many checks of expression ended with outcome.
func (m *InMemoryMetrics) Count(expression string, outcome Outcome) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.checks[expression+":"+string(outcome)]
}

// Total returns the number of recorded checks.
func (m *InMemoryMetrics) Total() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}
