package assistant

import (
	"sync"
	"time"
)

// AnswerStats counts answers by intent and path. No query text is kept.
type AnswerStats struct {
	mu       sync.Mutex
	started  time.Time
	total    int
	byIntent map[Intent]int
	byPath   map[Path]int
	confSum  float64
}

// NewAnswerStats creates empty counters
func NewAnswerStats(now time.Time) *AnswerStats {
	return &AnswerStats{
		started:  now,
		byIntent: make(map[Intent]int),
		byPath:   make(map[Path]int),
	}
}

// Record counts one answer
func (s *AnswerStats) Record(intent Intent, path Path, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.byIntent[intent]++
	s.byPath[path]++
	s.confSum += confidence
}

// GetStats returns a point-in-time copy of the counters
func (s *AnswerStats) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	intents := make(map[Intent]int, len(s.byIntent))
	for k, v := range s.byIntent {
		intents[k] = v
	}
	paths := make(map[Path]int, len(s.byPath))
	for k, v := range s.byPath {
		paths[k] = v
	}

	avg := 0.0
	if s.total > 0 {
		avg = s.confSum / float64(s.total)
	}

	return map[string]interface{}{
		"since":              s.started.UTC().Format(time.RFC3339),
		"total_answers":      s.total,
		"average_confidence": avg,
		"by_intent":          intents,
		"by_path":            paths,
	}
}
