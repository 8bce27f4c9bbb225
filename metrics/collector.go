package metrics

import (
	"sync/atomic"
	"time"
)

// SampleMetric summarizes one sampled estimate.
type SampleMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Failures   int
}

type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddFailure()
	Complete() SampleMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	episodes   atomic.Int64
	failures   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.failures.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFailure() {
	m.failures.Add(1)
}

func (m *collector) Complete() SampleMetric {
	return SampleMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Failures:   int(m.failures.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFailure()            {}
func (m *dummyCollector) Complete() SampleMetric { return SampleMetric{} }
