// Package counter provides the operation tally behind the counting wrapper:
// a ledger mapping operation names to occurrence counts. A single
// process-wide ledger backs all wrappers by default, and independent
// Counter instances can be created for isolated measurements.
//
// Counters are deliberately unsynchronized. Measurement runs are
// single-threaded by contract; callers that need isolation between
// goroutines should give each its own Counter rather than lock a shared
// one.
package counter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Tally is a snapshot of operation counts, keyed by operation name.
// Indexing a missing key yields zero, so callers can read any key safely.
type Tally map[string]int

// Get returns the count recorded under op, zero if absent.
func (t Tally) Get(op string) int {
	return t[op]
}

// Total returns the sum of all recorded counts.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// String renders the tally as "op=count" pairs in sorted key order.
func (t Tally) String() string {
	keys := slices.Sorted(maps.Keys(t))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, t[k]))
	}
	return strings.Join(parts, " ")
}

// Counter is a mutable operation ledger. The zero value is not usable;
// use New. A Counter is not safe for concurrent use.
type Counter struct {
	tally Tally
}

// New creates an empty ledger.
func New() *Counter {
	return &Counter{tally: Tally{}}
}

// Inc records one occurrence of op.
func (c *Counter) Inc(op string) {
	c.tally[op]++
}

// Get returns the count recorded under op, zero if absent.
func (c *Counter) Get(op string) int {
	return c.tally[op]
}

// Total returns the sum of all recorded counts.
func (c *Counter) Total() int {
	return c.tally.Total()
}

// Reset clears all recorded counts.
func (c *Counter) Reset() {
	clear(c.tally)
}

// Snapshot returns an independent copy of the current counts. The copy
// does not reflect operations recorded after the call.
func (c *Counter) Snapshot() Tally {
	return maps.Clone(c.tally)
}

// std is the process-wide ledger used by wrappers unless rebound.
var std = New()

// Default returns the process-wide ledger.
func Default() *Counter {
	return std
}

// Scope begins a measurement run: it clears the default ledger and
// returns it, live, so the caller can read counts as they accumulate.
// Nothing happens when a scope "ends"; the counts stay in place for
// inspection. Entering a second scope while one is in progress clears
// the first scope's counts.
func Scope() *Counter {
	std.Reset()
	return std
}

// Measure runs fn against a freshly cleared default ledger and returns a
// snapshot of the counts it produced.
func Measure(fn func()) Tally {
	Scope()
	fn()
	return std.Snapshot()
}
