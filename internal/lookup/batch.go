package lookup

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/opendict/wordscan/internal/dict"
	"github.com/opendict/wordscan/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent lookups of multiple words.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Service because:
//  1. It keeps the Service focused on single-word lookups
//  2. Language validation can run once for the whole batch
//  3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// service performs the individual lookups.
	service *Service

	// concurrency is the maximum number of words in flight at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(bp *BatchProcessor) {
		bp.logger = logger
	}
}

// WithBatchConcurrency sets the maximum number of concurrent word
// lookups. Default is 4 if not specified. The fetch layer's rate
// limiter still paces the underlying requests across the whole batch.
func WithBatchConcurrency(n int) BatchOption {
	return func(bp *BatchProcessor) {
		if n > 0 {
			bp.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor on top of the given service.
func NewBatchProcessor(service *Service, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		service:     service,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch looks up every word concurrently and returns the
// reports in input order. Blank words are dropped before processing.
// The language pair is validated once up front, so per-word failures
// can only be per-source ones, recorded inside each report.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each word gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// On cancellation the reports collected so far are returned alongside
// the context error; unprocessed slots are nil.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, words []string, from, to string) ([]*model.LookupReport, error) {
	words = cleanWords(words)
	if len(words) == 0 {
		return nil, dict.ErrNoWord
	}

	fromCode, toCode, dictionaries, err := bp.service.resolve(from, to)
	if err != nil {
		return nil, err
	}

	bp.logger.Info("starting batch lookup",
		"total_words", len(words),
		"from", fromCode,
		"to", toCode,
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own slot.
	reports := make([]*model.LookupReport, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			reports[i] = bp.service.lookupResolved(ctx, word, fromCode, toCode, dictionaries)

			bp.logger.Info("word complete",
				"word", word,
				"index", i+1,
				"total", len(words),
			)
			return nil
		})
	}

	err = g.Wait()

	bp.logger.Info("batch lookup complete",
		"total_words", len(words),
		"elapsed", time.Since(startTime),
	)

	return reports, err
}

// ProcessBatchWithCallback looks up every word and calls the callback
// for each completed report. This is useful for streaming output.
//
// The callback receives the report and the word's index in the cleaned
// input slice. It is called from the goroutine that completed the
// lookup, so it must be safe for concurrent use if it touches shared
// state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	words []string,
	from, to string,
	callback func(report *model.LookupReport, index int),
) error {
	words = cleanWords(words)
	if len(words) == 0 {
		return dict.ErrNoWord
	}

	fromCode, toCode, dictionaries, err := bp.service.resolve(from, to)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			callback(bp.service.lookupResolved(ctx, word, fromCode, toCode, dictionaries), i)
			return nil
		})
	}

	return g.Wait()
}

// cleanWords trims each word and drops the blanks.
func cleanWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
