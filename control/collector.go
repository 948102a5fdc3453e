// control/collector.go
// Author: momentics <momentics@gmail.com>
//
// Snapshot collector bridging the execution core into a MetricsRegistry.

package control

import (
	"strconv"

	"github.com/momentics/hioload-async/exec"
	"github.com/momentics/hioload-async/pool"
)

// Collector periodically snapshots core components into a registry. The
// caller drives Collect from its own tick loop; the collector owns no
// goroutine of its own.
type Collector struct {
	registry *MetricsRegistry
	pools    []*exec.Pool
	buffers  []*pool.Pool
}

// NewCollector creates a collector writing into registry.
func NewCollector(registry *MetricsRegistry) *Collector {
	return &Collector{registry: registry}
}

// TrackExecutor registers a worker pool for collection.
func (c *Collector) TrackExecutor(p *exec.Pool) { c.pools = append(c.pools, p) }

// TrackBufferPool registers a buffer pool for collection.
func (c *Collector) TrackBufferPool(p *pool.Pool) { c.buffers = append(c.buffers, p) }

// Collect writes one snapshot of every tracked component.
func (c *Collector) Collect() {
	for i, p := range c.pools {
		s := p.Stats()
		c.registry.Set(key("exec", i, "submitted"), s.Submitted)
		c.registry.Set(key("exec", i, "completed"), s.Completed)
		c.registry.Set(key("exec", i, "pending"), s.Pending)
		c.registry.Set(key("exec", i, "workers"), int64(s.Workers))
	}
	for i, p := range c.buffers {
		s := p.Stats()
		c.registry.Set(key("bufpool", i, "gets"), s.Gets)
		c.registry.Set(key("bufpool", i, "reuses"), s.Reuses)
		c.registry.Set(key("bufpool", i, "allocs"), s.Allocs)
		c.registry.Set(key("bufpool", i, "evictions"), s.Evictions)
		c.registry.Set(key("bufpool", i, "puts"), s.Puts)
	}
}

func key(component string, idx int, field string) string {
	return component + "." + strconv.Itoa(idx) + "." + field
}
