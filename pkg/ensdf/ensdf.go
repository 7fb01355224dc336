package ensdf

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nucleura/helios/pkg/ensdf/cache"
	"nucleura/helios/pkg/ensdf/ensdferr"
	"nucleura/helios/pkg/ensdf/parser"
	"nucleura/helios/pkg/ensdf/provider"
	"nucleura/helios/pkg/ensdf/record"
	"nucleura/helios/pkg/telemetry/logging"
	"nucleura/helios/pkg/telemetry/metrics"
)

// adoptedLevels is the dataset name carrying the evaluated level scheme
// of a nuclide.
const adoptedLevels = "ADOPTED LEVELS"

// Service is the high-level entry point for evaluated nuclear structure
// data. It fetches raw dataset text from a Provider, parses it, and
// optionally caches the raw text between lookups.
type Service struct {
	provider provider.Provider
	parser   *parser.Parser
	cache    cache.Backend
	logger   *logging.Logger
	metrics  *metrics.Collector
}

// Option configures a Service.
type Option func(*Service)

// WithCache attaches a cache backend for raw dataset text.
func WithCache(backend cache.Backend) Option {
	return func(s *Service) {
		s.cache = backend
	}
}

// WithLogger sets the service logger. The default discards all output.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics attaches a metrics collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(s *Service) {
		s.metrics = collector
	}
}

// NewService creates a Service reading from p.
func NewService(p provider.Provider, opts ...Option) *Service {
	s := &Service{
		provider: p,
		parser:   parser.New(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dataset fetches and parses the named dataset for a nuclide.
func (s *Service) Dataset(ctx context.Context, mass, protons int, name string) (*record.Dataset, error) {
	ctx = s.requestContext(ctx, mass, name)

	text, err := s.fetch(ctx, mass, protons, name)
	if err != nil {
		return nil, err
	}
	return s.parse(ctx, text)
}

// AdoptedLevels fetches and parses the adopted-levels dataset for a
// nuclide, the evaluated level scheme most consumers want.
func (s *Service) AdoptedLevels(ctx context.Context, mass, protons int) (*record.Dataset, error) {
	ctx = s.requestContext(ctx, mass, adoptedLevels)

	key := cache.Key{Mass: mass, Protons: protons, Name: adoptedLevels}
	if text, ok := s.cacheGet(ctx, key); ok {
		return s.parse(ctx, text)
	}

	text, err := s.provider.AdoptedLevels(ctx, mass, protons)
	if err != nil {
		return nil, fmt.Errorf("fetch adopted levels: %w", err)
	}
	s.cachePut(ctx, key, text)

	return s.parse(ctx, text)
}

// DatasetNames lists the dataset identifiers available in a mass chain.
func (s *Service) DatasetNames(ctx context.Context, mass int) ([]string, error) {
	ctx = s.requestContext(ctx, mass, "")

	names, err := s.provider.DatasetNames(ctx, mass)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	s.logger.DebugContext(ctx, "listed datasets", "count", len(names))
	return names, nil
}

// Nucleus fetches the adopted levels of a nuclide and wraps them in a
// Nucleus for level-scheme queries.
func (s *Service) Nucleus(ctx context.Context, mass, protons int) (*Nucleus, error) {
	ds, err := s.AdoptedLevels(ctx, mass, protons)
	if err != nil {
		return nil, err
	}
	return NewNucleus(mass, protons, ds), nil
}

// InvalidateMass drops all cached datasets for a mass chain. It is the
// hook for the provider watcher: call it when an ensdf.NNN file changes.
func (s *Service) InvalidateMass(ctx context.Context, mass int) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.InvalidateMass(ctx, mass); err != nil {
		return fmt.Errorf("invalidate mass chain %d: %w", mass, err)
	}
	s.logger.InfoContext(ctx, "invalidated mass chain", "mass", mass)
	return nil
}

// fetch returns the raw text for a named dataset, consulting the cache
// first.
func (s *Service) fetch(ctx context.Context, mass, protons int, name string) (string, error) {
	key := cache.Key{Mass: mass, Protons: protons, Name: name}
	if text, ok := s.cacheGet(ctx, key); ok {
		return text, nil
	}

	text, err := s.provider.Dataset(ctx, mass, protons, name)
	if err != nil {
		return "", fmt.Errorf("fetch dataset: %w", err)
	}
	s.cachePut(ctx, key, text)
	return text, nil
}

// parse runs the parser over raw dataset text, recording metrics and
// logging the outcome.
func (s *Service) parse(ctx context.Context, text string) (*record.Dataset, error) {
	start := time.Now()
	ds, err := s.parser.Parse(text)
	elapsed := time.Since(start)

	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordParse("error", elapsed)
			s.metrics.RecordParseError(errorKind(err))
		}
		s.logger.ErrorContext(ctx, "dataset parse failed", "error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordParse("success", elapsed)
		s.metrics.RecordRecords("level", len(ds.Levels))
		s.metrics.RecordRecords("gamma", len(ds.Gammas()))
	}
	s.logger.DebugContext(ctx, "dataset parsed",
		"levels", len(ds.Levels),
		"duration", elapsed,
	)
	return ds, nil
}

func (s *Service) cacheGet(ctx context.Context, key cache.Key) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	text, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "cache get failed", "error", err)
		return "", false
	}
	if s.metrics != nil {
		if ok {
			s.metrics.RecordCacheHit("datasets")
		} else {
			s.metrics.RecordCacheMiss("datasets")
		}
	}
	return text, ok
}

func (s *Service) cachePut(ctx context.Context, key cache.Key, text string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, key, text); err != nil {
		s.logger.WarnContext(ctx, "cache put failed", "error", err)
	}
}

// requestContext stamps the context with a request ID and lookup fields
// for log correlation.
func (s *Service) requestContext(ctx context.Context, mass int, dataset string) context.Context {
	if logging.GetRequestID(ctx) == "" {
		ctx = logging.WithRequestID(ctx, uuid.NewString())
	}
	ctx = logging.WithMass(ctx, mass)
	if dataset != "" {
		ctx = logging.WithDataset(ctx, dataset)
	}
	return ctx
}

// errorKind maps a parse error to its metric label.
func errorKind(err error) string {
	for _, kind := range []ensdferr.Kind{
		ensdferr.KindMalformedLine,
		ensdferr.KindUnknownRecordType,
		ensdferr.KindInvalidProperty,
		ensdferr.KindInvalidQuantity,
		ensdferr.KindIO,
	} {
		if ensdferr.IsKind(err, kind) {
			return string(kind)
		}
	}
	return "unknown"
}
