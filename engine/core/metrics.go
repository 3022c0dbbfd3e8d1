package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// QueryMetrics keeps a rolling average of query durations over the last
// AVG_COUNT samples, plus totals for hits and misses.
type QueryMetrics struct {
	mu sync.Mutex

	avgCounter uint8
	samples    [AVG_COUNT]float64
	filled     uint8
	msAvg      float64

	queries int64
	hits    int64
}

func NewQueryMetrics() *QueryMetrics {
	return &QueryMetrics{}
}

// Record stores one query duration and whether it produced a hit.
func (m *QueryMetrics) Record(elapsed time.Duration, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := float64(elapsed) / float64(time.Millisecond)
	m.samples[m.avgCounter] = ms
	m.avgCounter = (m.avgCounter + 1) % AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}

	sum := 0.0
	for i := uint8(0); i < m.filled; i++ {
		sum += m.samples[i]
	}
	m.msAvg = sum / float64(m.filled)

	m.queries++
	if hit {
		m.hits++
	}
}

// AverageMS is the mean duration, in milliseconds, of the retained samples.
func (m *QueryMetrics) AverageMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msAvg
}

// Counts returns the number of recorded queries and how many of them hit.
func (m *QueryMetrics) Counts() (queries, hits int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries, m.hits
}
