package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opendict/wordscan/internal/dict"
	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// Request describes one lookup. From and To accept anything the
// language resolver does: short codes, full English names, or
// region-qualified tags.
type Request struct {
	// Word is the word or phrase to look up.
	Word string

	// From is the source language identifier.
	From string

	// To is the target language identifier.
	To string
}

// Service coordinates lookups across the registered dictionary clients.
//
// Design decision: The service queries every applicable dictionary
// concurrently rather than in sequence because:
//  1. The sites are independent and each fetch is latency-bound
//  2. One site failing or stalling must not block the other
//  3. The fetch layer's rate limiter still paces requests per client
type Service struct {
	// dictionaries are the clients to fan out over, typically dict.All.
	dictionaries []dict.Dictionary

	// logger is used for structured lookup logging.
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a lookup service over the given dictionary clients.
func NewService(dictionaries []dict.Dictionary, opts ...Option) *Service {
	s := &Service{dictionaries: dictionaries}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Lookup resolves the request's languages, then queries every
// dictionary serving the pair and merges the per-source results into
// one report. Validation failures (unknown language, unsupported pair,
// no applicable dictionary) return an error before any fetch happens;
// after that point per-source failures are recorded in the report, not
// returned.
func (s *Service) Lookup(ctx context.Context, req Request) (*model.LookupReport, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, dict.ErrNoWord
	}

	from, to, dictionaries, err := s.resolve(req.From, req.To)
	if err != nil {
		return nil, err
	}

	return s.lookupResolved(ctx, word, from, to, dictionaries), nil
}

// resolve canonicalizes the language pair and narrows the registered
// clients to those serving it. All input-validation errors for a
// lookup originate here.
func (s *Service) resolve(from, to string) (string, string, []dict.Dictionary, error) {
	fromCode, err := language.Resolve(from)
	if err != nil {
		return "", "", nil, err
	}
	toCode, err := language.Resolve(to)
	if err != nil {
		return "", "", nil, err
	}
	if err := language.CheckPair(fromCode, toCode); err != nil {
		return "", "", nil, err
	}

	supported := make([]dict.Dictionary, 0, len(s.dictionaries))
	for _, d := range s.dictionaries {
		if d.Supports(fromCode, toCode) {
			supported = append(supported, d)
		}
	}
	if len(supported) == 0 {
		return "", "", nil, fmt.Errorf("%w: %s-%s", ErrNoDictionaries, fromCode, toCode)
	}

	return fromCode, toCode, supported, nil
}

// lookupResolved fans out over the given dictionaries and merges their
// results. Inputs are already validated. A dictionary error becomes an
// annotated empty result for that source so the report keeps one entry
// per queried source.
func (s *Service) lookupResolved(ctx context.Context, word, from, to string, dictionaries []dict.Dictionary) *model.LookupReport {
	start := time.Now()

	s.logger.Info("looking up word",
		"word", word,
		"from", from,
		"to", to,
		"dictionaries", len(dictionaries),
	)

	report := model.NewLookupReport(word, from, to)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, d := range dictionaries {
		d := d
		g.Go(func() error {
			result, err := d.Lookup(ctx, word, from, to)
			if err != nil {
				s.logger.Warn("dictionary lookup failed",
					"source", string(d.Name()),
					"word", word,
					"error", err,
				)
				result = model.NewDictionaryResult(word, d.Name())
				result.Error = err.Error()
			}

			mu.Lock()
			report.AddResult(result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // lookup goroutines record failures in the report

	report.Elapsed = time.Since(start)

	s.logger.Info("lookup complete",
		"word", word,
		"translations", report.TotalTranslations(),
		"elapsed", report.Elapsed,
	)

	return report
}
