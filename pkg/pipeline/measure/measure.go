package measure

import (
	"sort"
	"sync"
	"time"
)

// DefaultMeasure is an in-memory Measure safe for concurrent use.
type DefaultMeasure struct {
	mu    sync.RWMutex
	steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string, concurrent int) Metric {
	if concurrent < 1 {
		concurrent = 1
	}
	mt := &DefaultMetric{
		mu:            &sync.Mutex{},
		allTransports: make(map[string]*TransportInfo),
		concurrent:    concurrent,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps[name] = mt

	return mt
}

// GetMetric returns nil when no metric was added under name.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.steps[name]
}

// AllMetrics returns a snapshot of the metrics by stage name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		all[name] = mt
	}

	return all
}

// Summary is a printable view of one stage metric.
type Summary struct {
	Name    string
	Count   int64
	Average time.Duration
	Total   time.Duration
}

// Summaries returns one Summary per stage, sorted by name.
func Summaries(msr Measure) []Summary {
	all := msr.AllMetrics()
	res := make([]Summary, 0, len(all))
	for name, mt := range all {
		res = append(res, Summary{
			Name:    name,
			Count:   mt.Count(),
			Average: mt.AVGDuration(),
			Total:   mt.GetTotalDuration(),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})

	return res
}

var _ Measure = (*DefaultMeasure)(nil)
