package session

import (
	"fmt"
	"sync/atomic"
	"time"
)

// IDGenerator hands out unique keyframe ids of the form prefix-nanos-seq
type IDGenerator struct {
	prefix string
	seq    atomic.Uint64
	now    func() time.Time
}

// NewIDGenerator creates a generator for the given prefix
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix, now: time.Now}
}

// Next returns a fresh id
func (g *IDGenerator) Next() string {
	n := g.seq.Add(1)
	return fmt.Sprintf("%s-%d-%d", g.prefix, g.now().UnixNano(), n)
}
