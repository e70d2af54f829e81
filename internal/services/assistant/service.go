package assistant

import (
	"log/slog"
	"time"

	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/marketdata"
	"github.com/pkg/errors"
)

// Service answers chat messages. It is safe for concurrent use: the
// tables and price snapshot are read-only and the counters are locked.
type Service struct {
	cfg      *Config
	router   *Router
	selector *Selector
	prices   *marketdata.Snapshot
	stats    *AnswerStats
	logger   *slog.Logger
	now      func() time.Time
	picker   Picker
}

// Option customizes a Service
type Option func(*Service)

// WithPrices attaches a price snapshot for stock price questions
func WithPrices(snap *marketdata.Snapshot) Option {
	return func(s *Service) { s.prices = snap }
}

// WithLogger sets the logger used for per-answer log lines
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock replaces time.Now for envelope timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPicker overrides the picker built from the fallback strategy
func WithPicker(p Picker) Option {
	return func(s *Service) { s.picker = p }
}

// NewService creates an assistant over the default lexicon
func NewService(cfg *Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := DefaultLexicon.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid lexicon")
	}

	s := &Service{
		cfg:    cfg,
		router: NewRouter(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.picker == nil {
		p, err := NewPicker(cfg.FallbackStrategy, cfg.FallbackSeed)
		if err != nil {
			return nil, err
		}
		s.picker = p
	}

	s.selector = NewSelector(DefaultLexicon, s.picker)
	s.stats = NewAnswerStats(s.now())
	return s, nil
}

// Answer builds the response envelope for one message
func (s *Service) Answer(message string) *models.ResponseEnvelope {
	normalized := Normalize(message)
	c := s.router.Classify(normalized)

	source, mode := s.cfg.Source, s.cfg.Mode
	sel, ok := s.answerFromPrices(message, normalized)
	if ok {
		source, mode = PriceSource, ModePriceHistory
	} else {
		sel = s.selector.Select(c, normalized, message)
	}

	confidence := ScoreConfidence(ScoreInput{
		Path:           sel.Path,
		Weight:         sel.Weight,
		KeywordMatched: sel.KeywordMatched,
		Boost:          sel.Boost,
		Normalized:     normalized,
		EntityCount:    len(c.Entities),
	})

	env := &models.ResponseEnvelope{
		Response:   sel.Text,
		Confidence: confidence,
		Query:      message,
		Source:     source,
		Mode:       mode,
		Timestamp:  s.now().UTC().Format(models.TimestampLayout),
	}
	if s.cfg.IncludeAnalysis {
		env.Analysis = &models.Analysis{
			Intent:    string(c.Intent),
			Entities:  c.Entities,
			Timeframe: c.Timeframe,
			Metric:    c.Metric,
			Reasoning: sel.Reasoning,
			Path:      string(sel.Path),
			Category:  sel.Category,
		}
	}
	if s.cfg.IncludeSuggestions {
		env.Suggestions = followUps(c)
	}

	s.stats.Record(c.Intent, sel.Path, confidence)
	s.logger.Info("answer selected",
		"intent", c.Intent,
		"path", sel.Path,
		"category", sel.Category,
		"confidence", confidence,
		"entities", len(c.Entities),
		"query_len", len(message),
	)

	return env
}

// Classify exposes the router for callers that only need the analysis
func (s *Service) Classify(message string) Classification {
	return s.router.Classify(message)
}

// Stats returns the answer counters
func (s *Service) Stats() *AnswerStats {
	return s.stats
}

// Prices returns the attached snapshot, which may be nil
func (s *Service) Prices() *marketdata.Snapshot {
	return s.prices
}
