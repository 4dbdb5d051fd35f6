package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	mu       sync.Mutex
	outcomes map[string]map[string]uint64
}

func New() *Collector {
	return &Collector{outcomes: map[string]map[string]uint64{}}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordOutcome counts a settlement operation result. Successful calls use the outcome "ok",
// business failures their failure code.
func (c *Collector) RecordOutcome(operation, outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byOutcome, ok := c.outcomes[operation]
	if !ok {
		byOutcome = map[string]uint64{}
		c.outcomes[operation] = byOutcome
	}
	byOutcome[outcome]++
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	outcomes := make(map[string]map[string]uint64, len(c.outcomes))
	for op, byOutcome := range c.outcomes {
		copied := make(map[string]uint64, len(byOutcome))
		for k, v := range byOutcome {
			copied[k] = v
		}
		outcomes[op] = copied
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"rateLimitedTotal": limited,
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"outcomes":         outcomes,
	}
}
