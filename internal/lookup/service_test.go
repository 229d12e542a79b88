package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/opendict/wordscan/internal/dict"
	"github.com/opendict/wordscan/internal/language"
	"github.com/opendict/wordscan/internal/model"
)

// fakeDictionary is a configurable dict.Dictionary for tests.
type fakeDictionary struct {
	name     model.Source
	supports bool
	lookup   func(ctx context.Context, word, from, to string) (*model.DictionaryResult, error)
}

func (f *fakeDictionary) Name() model.Source { return f.name }

func (f *fakeDictionary) Supports(_, _ string) bool { return f.supports }

func (f *fakeDictionary) Lookup(ctx context.Context, word, from, to string) (*model.DictionaryResult, error) {
	return f.lookup(ctx, word, from, to)
}

// okDictionary returns a fake that yields one translation per lookup,
// shaped like the real source it impersonates.
func okDictionary(name model.Source) *fakeDictionary {
	return &fakeDictionary{
		name:     name,
		supports: true,
		lookup: func(_ context.Context, word, _, _ string) (*model.DictionaryResult, error) {
			result := model.NewDictionaryResult(word, name)
			if name == model.SourceWordReference {
				result.Sections = []model.TranslationSection{{
					Title: "Principal Translations",
					Translations: []model.Translation{{
						Word:     model.Term{Word: word},
						Meanings: []model.Meaning{{Word: "x"}},
					}},
				}}
				return result, nil
			}
			result.Translations = []model.LingueeTranslation{{
				From:         word,
				Translations: []model.LingueeCandidate{{Text: "x", Frequency: model.FrequencyUnknown}},
			}}
			return result, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestServiceLookup tests validation and the per-dictionary fan-out.
func TestServiceLookup(t *testing.T) {
	t.Parallel()

	t.Run("merges results from every dictionary", func(t *testing.T) {
		t.Parallel()

		service := NewService([]dict.Dictionary{
			okDictionary(model.SourceWordReference),
			okDictionary(model.SourceLinguee),
		}, WithLogger(discardLogger()))

		report, err := service.Lookup(context.Background(), Request{Word: "hola", From: "es", To: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if report.Word != "hola" || report.From != "es" || report.To != "en" {
			t.Errorf("unexpected report header: %q %s-%s", report.Word, report.From, report.To)
		}
		wantSources := []model.Source{model.SourceLinguee, model.SourceWordReference}
		if !reflect.DeepEqual(report.Sources(), wantSources) {
			t.Errorf("expected sources %v, got %v", wantSources, report.Sources())
		}
		if got := report.TotalTranslations(); got != 2 {
			t.Errorf("expected 2 translations, got %d", got)
		}
		if report.DateLooked.IsZero() {
			t.Error("expected the report to be date-stamped")
		}
	})

	t.Run("resolves language names and trims the word before lookup", func(t *testing.T) {
		t.Parallel()

		var gotWord, gotFrom, gotTo string
		fake := &fakeDictionary{
			name:     model.SourceLinguee,
			supports: true,
			lookup: func(_ context.Context, word, from, to string) (*model.DictionaryResult, error) {
				gotWord, gotFrom, gotTo = word, from, to
				return model.NewDictionaryResult(word, model.SourceLinguee), nil
			},
		}
		service := NewService([]dict.Dictionary{fake}, WithLogger(discardLogger()))

		if _, err := service.Lookup(context.Background(), Request{Word: "  hola  ", From: "Spanish", To: "ENGLISH"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotWord != "hola" {
			t.Errorf("expected trimmed word, got %q", gotWord)
		}
		if gotFrom != "es" || gotTo != "en" {
			t.Errorf("expected resolved codes es-en, got %s-%s", gotFrom, gotTo)
		}
	})

	t.Run("rejects an unknown language before any lookup", func(t *testing.T) {
		t.Parallel()

		called := false
		fake := okDictionary(model.SourceLinguee)
		fake.lookup = func(_ context.Context, word, _, _ string) (*model.DictionaryResult, error) {
			called = true
			return model.NewDictionaryResult(word, model.SourceLinguee), nil
		}
		service := NewService([]dict.Dictionary{fake}, WithLogger(discardLogger()))

		_, err := service.Lookup(context.Background(), Request{Word: "hola", From: "xx", To: "en"})
		if !errors.Is(err, language.ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
		if called {
			t.Error("expected no dictionary calls on validation failure")
		}
	})

	t.Run("rejects an unsupported pair", func(t *testing.T) {
		t.Parallel()

		service := NewService([]dict.Dictionary{okDictionary(model.SourceLinguee)}, WithLogger(discardLogger()))

		_, err := service.Lookup(context.Background(), Request{Word: "bonjour", From: "fr", To: "de"})
		if !errors.Is(err, language.ErrUnsupportedPair) {
			t.Errorf("expected ErrUnsupportedPair, got %v", err)
		}
	})

	t.Run("skips dictionaries that do not serve the pair", func(t *testing.T) {
		t.Parallel()

		wrCalled := false
		wr := okDictionary(model.SourceWordReference)
		wr.supports = false
		wr.lookup = func(_ context.Context, word, _, _ string) (*model.DictionaryResult, error) {
			wrCalled = true
			return model.NewDictionaryResult(word, model.SourceWordReference), nil
		}
		service := NewService([]dict.Dictionary{wr, okDictionary(model.SourceLinguee)}, WithLogger(discardLogger()))

		report, err := service.Lookup(context.Background(), Request{Word: "hund", From: "en", To: "da"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wrCalled {
			t.Error("expected the unsupporting dictionary to be skipped")
		}
		wantSources := []model.Source{model.SourceLinguee}
		if !reflect.DeepEqual(report.Sources(), wantSources) {
			t.Errorf("expected sources %v, got %v", wantSources, report.Sources())
		}
	})

	t.Run("errors when no selected dictionary serves the pair", func(t *testing.T) {
		t.Parallel()

		only := okDictionary(model.SourceLinguee)
		only.supports = false
		service := NewService([]dict.Dictionary{only}, WithLogger(discardLogger()))

		_, err := service.Lookup(context.Background(), Request{Word: "hola", From: "en", To: "es"})
		if !errors.Is(err, ErrNoDictionaries) {
			t.Errorf("expected ErrNoDictionaries, got %v", err)
		}
	})

	t.Run("isolates a failing dictionary", func(t *testing.T) {
		t.Parallel()

		failing := &fakeDictionary{
			name:     model.SourceLinguee,
			supports: true,
			lookup: func(_ context.Context, _, _, _ string) (*model.DictionaryResult, error) {
				return nil, errors.New("linguee exploded")
			},
		}
		service := NewService([]dict.Dictionary{okDictionary(model.SourceWordReference), failing}, WithLogger(discardLogger()))

		report, err := service.Lookup(context.Background(), Request{Word: "hola", From: "es", To: "en"})
		if err != nil {
			t.Fatalf("expected per-source isolation, got error: %v", err)
		}

		failed, ok := report.Result(model.SourceLinguee)
		if !ok {
			t.Fatal("expected a result entry for the failing source")
		}
		if !strings.Contains(failed.Error, "linguee exploded") {
			t.Errorf("expected the failure in the Error field, got %q", failed.Error)
		}
		if !failed.IsEmpty() {
			t.Error("expected the failing source's result to be empty")
		}

		succeeded, ok := report.Result(model.SourceWordReference)
		if !ok {
			t.Fatal("expected a result entry for the succeeding source")
		}
		if succeeded.TranslationCount() != 1 {
			t.Errorf("expected the succeeding source's translations, got %d", succeeded.TranslationCount())
		}
	})

	t.Run("empty word is rejected", func(t *testing.T) {
		t.Parallel()

		service := NewService([]dict.Dictionary{okDictionary(model.SourceLinguee)}, WithLogger(discardLogger()))
		if _, err := service.Lookup(context.Background(), Request{Word: "   ", From: "es", To: "en"}); !errors.Is(err, dict.ErrNoWord) {
			t.Errorf("expected ErrNoWord, got %v", err)
		}
	})

	t.Run("stamps elapsed time", func(t *testing.T) {
		t.Parallel()

		slow := okDictionary(model.SourceLinguee)
		inner := slow.lookup
		slow.lookup = func(ctx context.Context, word, from, to string) (*model.DictionaryResult, error) {
			time.Sleep(5 * time.Millisecond)
			return inner(ctx, word, from, to)
		}
		service := NewService([]dict.Dictionary{slow}, WithLogger(discardLogger()))

		report, err := service.Lookup(context.Background(), Request{Word: "hola", From: "es", To: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Elapsed < 5*time.Millisecond {
			t.Errorf("expected elapsed to cover the lookup, got %v", report.Elapsed)
		}
	})
}
