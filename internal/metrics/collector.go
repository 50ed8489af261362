// Package metrics provides in-memory statistics for conversion runs.
package metrics

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/raphaelgruber/unitconv/internal/units"
)

// Outcome classifies a single conversion.
type Outcome int

// Conversion outcomes.
const (
	// OutcomeConverted is a parsed value scaled by a tabulated factor.
	OutcomeConverted Outcome = iota
	// OutcomeIdentity is a parsed value where the identity fallback applied.
	OutcomeIdentity
	// OutcomeInvalidInput is unparseable input rendered as "0.0".
	OutcomeInvalidInput
)

// PairMetrics holds aggregated metrics for one ordered unit pair.
type PairMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// PairSnapshot is the computed view of a PairMetrics.
type PairSnapshot struct {
	From      units.Unit
	To        units.Unit
	Count     int64
	AvgTimeUs float64
	MinTimeUs int64
	MaxTimeUs int64
}

// Snapshot represents the run statistics at a point in time.
type Snapshot struct {
	UptimeSeconds float64
	Total         int64
	Converted     int64
	Identity      int64
	InvalidInput  int64
	Pairs         []PairSnapshot
}

// Collector aggregates conversion statistics.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	outcomes  map[Outcome]int64
	pairs     map[[2]units.Unit]*PairMetrics
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		outcomes:  make(map[Outcome]int64),
		pairs:     make(map[[2]units.Unit]*PairMetrics),
	}
}

// Classify reports the outcome Convert produces for req.
func Classify(req units.ConversionRequest) Outcome {
	if _, err := units.ParseNumber(req.Input); err != nil {
		return OutcomeInvalidInput
	}
	if !units.Defined(req.From, req.To) {
		return OutcomeIdentity
	}
	return OutcomeConverted
}

// Record counts one conversion of req that took duration.
func (c *Collector) Record(req units.ConversionRequest, duration time.Duration) {
	outcome := Classify(req)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes[outcome]++

	key := [2]units.Unit{req.From, req.To}
	m, ok := c.pairs[key]
	if !ok {
		m = &PairMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.pairs[key] = m
	}
	m.Count++
	m.TotalTime += duration
	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// Snapshot returns a point-in-time snapshot. Pairs are ordered by unit.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Converted:     c.outcomes[OutcomeConverted],
		Identity:      c.outcomes[OutcomeIdentity],
		InvalidInput:  c.outcomes[OutcomeInvalidInput],
	}
	snap.Total = snap.Converted + snap.Identity + snap.InvalidInput

	for key, m := range c.pairs {
		snap.Pairs = append(snap.Pairs, PairSnapshot{
			From:      key[0],
			To:        key[1],
			Count:     m.Count,
			AvgTimeUs: float64(m.TotalTime.Microseconds()) / float64(m.Count),
			MinTimeUs: m.MinTime.Microseconds(),
			MaxTimeUs: m.MaxTime.Microseconds(),
		})
	}
	sort.Slice(snap.Pairs, func(i, j int) bool {
		a, b := snap.Pairs[i], snap.Pairs[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return snap
}
