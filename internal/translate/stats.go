package translate

import "sync"

// Confidence bucket boundaries for the stats distribution.
const (
	highConfidence   = 0.7
	mediumConfidence = 0.4
)

// Stats counts translations by direction, origin stage, and confidence
// bucket. Safe for concurrent use.
type Stats struct {
	mu          sync.Mutex
	total       uint64
	byDirection map[string]uint64
	byOrigin    map[string]uint64
	high        uint64
	medium      uint64
	low         uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Total       uint64            `json:"total_translations"`
	ByDirection map[string]uint64 `json:"by_direction"`
	ByOrigin    map[string]uint64 `json:"by_origin"`
	High        uint64            `json:"high"`
	Medium      uint64            `json:"medium"`
	Low         uint64            `json:"low"`
}

func NewStats() *Stats {
	return &Stats{
		byDirection: make(map[string]uint64),
		byOrigin:    make(map[string]uint64),
	}
}

func (s *Stats) record(direction string, r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byDirection[direction]++
	s.byOrigin[r.Origin]++
	switch {
	case r.Confidence >= highConfidence:
		s.high++
	case r.Confidence >= mediumConfidence:
		s.medium++
	default:
		s.low++
	}
}

// Snapshot returns a copy of the current counters.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Total:       s.total,
		ByDirection: make(map[string]uint64, len(s.byDirection)),
		ByOrigin:    make(map[string]uint64, len(s.byOrigin)),
		High:        s.high,
		Medium:      s.medium,
		Low:         s.low,
	}
	for k, v := range s.byDirection {
		snap.ByDirection[k] = v
	}
	for k, v := range s.byOrigin {
		snap.ByOrigin[k] = v
	}
	return snap
}
