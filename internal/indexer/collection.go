package indexer

import (
	"sort"
	"sync"
)

// collection is the record set shared by all workers during a run. The lock
// is held only for the append itself.
type collection struct {
	mu      sync.Mutex
	records []Record
}

func (c *collection) add(r Record) {
	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()
}

// take hands the records to the caller, sorted by path. Only call it after
// every worker has exited.
func (c *collection) take() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.records
	c.records = nil
	if out == nil {
		out = []Record{}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}
