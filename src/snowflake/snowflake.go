// Package snowflake generates 64-bit time-ordered IDs: 42 bits of
// milliseconds since 2020-01-01T00:00:00Z, 10 bits of node and 12 bits of
// per-millisecond sequence.
package snowflake

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Epoch is the zero point of ID timestamps, in Unix milliseconds.
const Epoch int64 = 1_577_836_800_000

const (
	timestampBits = 42
	nodeBits      = 10
	sequenceBits  = 12

	nodeShift      = sequenceBits
	timestampShift = sequenceBits + nodeBits

	MaxNode     = 1<<nodeBits - 1
	maxSequence = 1<<sequenceBits - 1
	maxElapsed  = 1<<timestampBits - 1
)

var (
	// ErrClockBackwards is returned when the clock reads earlier than the
	// last generated ID.
	ErrClockBackwards = errors.New("clock moved backwards")
	// ErrClockRange is returned for times outside the 42-bit window.
	ErrClockRange = errors.New("time outside snowflake range")
	// ErrInvalidNode is returned for nodes above MaxNode.
	ErrInvalidNode = errors.New("node out of range")
)

// ID is a snowflake identifier.
type ID uint64

// Time returns when the ID was generated, to the millisecond.
func (id ID) Time() time.Time {
	ms := int64(id>>timestampShift) & maxElapsed
	return time.UnixMilli(ms + Epoch).UTC()
}

// Node returns the generating node.
func (id ID) Node() uint16 {
	return uint16(id>>nodeShift) & MaxNode
}

// Sequence returns the per-millisecond sequence number.
func (id ID) Sequence() uint16 {
	return uint16(id) & maxSequence
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Parse reads a decimal ID. IDs are stored as signed 64-bit integers, so
// values that would be negative are rejected.
func Parse(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing snowflake %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parsing snowflake %q: must not be negative", s)
	}
	return ID(n), nil
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator produces IDs for one node. It is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	node uint16
	last int64
	seq  uint16
	now  func() time.Time
}

// NewGenerator creates a generator for node (0..MaxNode).
func NewGenerator(node uint16, opts ...Option) (*Generator, error) {
	if node > MaxNode {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidNode, node, MaxNode)
	}
	g := &Generator{node: node, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Generator) millis() int64 {
	return g.now().UnixMilli()
}

// Next returns a new ID. When the sequence for the current millisecond is
// exhausted it waits for the next one.
func (g *Generator) Next() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.millis()
	if now < g.last {
		return 0, fmt.Errorf("%w by %dms", ErrClockBackwards, g.last-now)
	}

	if now == g.last {
		if g.seq == maxSequence {
			for now <= g.last {
				time.Sleep(100 * time.Microsecond)
				now = g.millis()
			}
			g.seq = 0
		} else {
			g.seq++
		}
	} else {
		g.seq = 0
	}

	elapsed := now - Epoch
	if elapsed < 0 || elapsed > maxElapsed {
		return 0, fmt.Errorf("%w: %s", ErrClockRange, time.UnixMilli(now).UTC())
	}

	g.last = now
	return ID(uint64(elapsed)<<timestampShift | uint64(g.node)<<nodeShift | uint64(g.seq)), nil
}
