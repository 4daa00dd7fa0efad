package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryMetrics_RecordCheck(t *testing.T) {
	m := NewInMemoryMetrics()

	m.RecordCheck("string", OutcomePassed)
	m.RecordCheck("string", OutcomePassed)
	m.RecordCheck("string", OutcomeFailed)
	m.RecordCheck("string|undefined", OutcomeFallback)

	assert.Equal(t, 2, m.Count("string", OutcomePassed))
	assert.Equal(t, 1, m.Count("string", OutcomeFailed))
	assert.Equal(t, 0, m.Count("string", OutcomeFallback))
	assert.Equal(t, 1, m.Count("string|undefined", OutcomeFallback))
	assert.Equal(t, 4, m.Total())
}

func TestInMemoryMetrics_Concurrent(t *testing.T) {
	m := NewInMemoryMetrics()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordCheck("number", OutcomePassed)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, m.Count("number", OutcomePassed))
	assert.Equal(t, 50, m.Total())
}

func TestNoopMetrics(t *testing.T) {
	var m CheckMetrics = NoopMetrics{}
	// Should not panic
	m.RecordCheck("string", OutcomePassed)
}
