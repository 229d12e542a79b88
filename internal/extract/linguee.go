package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/opendict/wordscan/internal/model"
	"github.com/opendict/wordscan/internal/textutil"
)

// lingueeBase prefixes relative pronunciation paths.
const lingueeBase = "https://www.linguee.com"

// Linguee marker selectors. The site wraps each headword in a lemma block
// inside the dictionary container; candidates and examples nest inside the
// lemma.
const (
	lgContainer       = "#dictionary"
	lgLemma           = "div.lemma"
	lgDictLink        = "a.dictLink"
	lgWordType        = "span.tag_wordtype"
	lgCandidate       = "div.translation"
	lgCandidateType   = "span.tag_type"
	lgFrequency       = "span.tag_c"
	lgExample         = "div.example"
	lgExampleSource   = "span.tag_s"
	lgExampleTarget   = "span.tag_t"
	lgVerifiedIcon    = ".icon_verified"
	lgExternalIcon    = ".icon_external"
	lgFallbackParents = ".lemma, .translation_group, .exact"
)

// Frequency phrases as they appear in candidate tags, checked in this
// order.
const (
	lgFrequencyHighPhrase   = "almost always used"
	lgFrequencyMediumPhrase = "often used"
	lgFrequencyLowPhrase    = "less common"
)

// playSoundRe pulls the pronunciation path out of the inline play-sound
// handler, e.g. onclick="playSound(this,'ES/es/es_hola.mp3','');".
var playSoundRe = regexp.MustCompile(`playSound\([^)]*?["']([^"')]+\.mp3)["']`)

// Linguee extracts a result from a Linguee search page. Lemma blocks are
// walked in document order by the primary pass; a looser fallback pass
// runs only when the primary pass retained nothing, salvaging partial
// results from unexpected markup at the cost of precision. A page neither
// pass can read yields an empty result, not an error.
func Linguee(html, inputWord, fromLang, toLang string) (*model.DictionaryResult, error) {
	if html == "" {
		return nil, ErrNoHTML
	}
	if inputWord == "" {
		return nil, ErrNoInputWord
	}
	if fromLang == "" || toLang == "" {
		return nil, ErrNoLanguage
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse linguee page: %w", err)
	}

	result := model.NewDictionaryResult(inputWord, model.SourceLinguee)

	entries := lingueePrimary(doc)
	if len(entries) == 0 {
		entries = lingueeFallback(doc, inputWord)
	}
	result.Translations = entries
	return result, nil
}

// lingueePrimary walks the lemma blocks inside the dictionary container,
// or the whole document when the container is absent.
func lingueePrimary(doc *goquery.Document) []model.LingueeTranslation {
	scope := doc.Find(lgContainer)
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var entries []model.LingueeTranslation
	scope.Find(lgLemma).Each(func(_ int, lemma *goquery.Selection) {
		if entry, ok := lingueeLemma(lemma); ok {
			entries = append(entries, entry)
		}
	})
	return entries
}

// lingueeLemma reads one lemma block. The block is skipped when its first
// dictionary link is empty (nothing to attach translations to) and
// retained only when it produced at least one candidate or context.
func lingueeLemma(lemma *goquery.Selection) (model.LingueeTranslation, bool) {
	from := textutil.CleanText(lemma.Find(lgDictLink).First().Text())
	if from == "" {
		return model.LingueeTranslation{}, false
	}

	entry := model.LingueeTranslation{
		From:     from,
		FromType: textutil.CleanText(lemma.Find(lgWordType).First().Text()),
		Audio:    lingueeAudio(lemma),
	}

	lemma.Find(lgCandidate).Each(func(_ int, cand *goquery.Selection) {
		text := textutil.CleanText(cand.Find(lgDictLink).First().Text())
		if text == "" || text == from {
			// Self-referential candidates are noise.
			return
		}
		entry.Translations = append(entry.Translations, model.LingueeCandidate{
			Text:      text,
			Type:      textutil.CleanText(cand.Find(lgCandidateType).First().Text()),
			Frequency: lingueeFrequencyTier(cand.Find(lgFrequency).First().Text()),
			Verified:  cand.Find(lgVerifiedIcon).Length() > 0,
		})
	})

	lemma.Find(lgExample).Each(func(_ int, example *goquery.Selection) {
		source := textutil.CleanText(example.Find(lgExampleSource).First().Text())
		target := textutil.CleanText(example.Find(lgExampleTarget).First().Text())
		if source == "" || target == "" {
			return
		}
		entry.Contexts = append(entry.Contexts, model.LingueeContext{
			Source:   source,
			Target:   target,
			Verified: example.Find(lgVerifiedIcon).Length() > 0,
			External: example.Find(lgExternalIcon).Length() > 0,
		})
	})

	return entry, entry.HasContent()
}

// lingueeFallback scans the whole document for dictionary links whose text
// contains the input word and mines their nearest known container for
// sibling links as candidates. Candidate type, frequency, and verification
// default to unknown values; this pass trades precision for recall and
// never runs when the primary pass found anything.
func lingueeFallback(doc *goquery.Document, inputWord string) []model.LingueeTranslation {
	needle := strings.ToLower(inputWord)

	var entries []model.LingueeTranslation
	seen := make(map[string]bool)

	doc.Find(lgDictLink).Each(func(_ int, link *goquery.Selection) {
		text := textutil.CleanText(link.Text())
		if text == "" || !strings.Contains(strings.ToLower(text), needle) {
			return
		}
		container := link.Closest(lgFallbackParents)
		if container.Length() == 0 {
			return
		}

		entry := model.LingueeTranslation{From: text}
		container.Find(lgDictLink).Each(func(_ int, sibling *goquery.Selection) {
			siblingText := textutil.CleanText(sibling.Text())
			if siblingText == "" || siblingText == text {
				return
			}
			entry.Translations = append(entry.Translations, model.LingueeCandidate{
				Text:      siblingText,
				Frequency: model.FrequencyUnknown,
			})
		})

		if entry.HasContent() && !seen[entry.From] {
			seen[entry.From] = true
			entries = append(entries, entry)
		}
	})
	return entries
}

// lingueeAudio finds a lemma's pronunciation URL, trying an <audio> source
// element first and the inline play-sound handler second. First match
// wins; a lemma with neither has no audio.
func lingueeAudio(lemma *goquery.Selection) string {
	if src, ok := lemma.Find("audio source").First().Attr("src"); ok && src != "" {
		return absoluteLingueeURL(src)
	}

	var audio string
	lemma.Find("[onclick]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		onclick, _ := el.Attr("onclick")
		if match := playSoundRe.FindStringSubmatch(onclick); match != nil {
			audio = absoluteLingueeURL(match[1])
			return false
		}
		return true
	})
	return audio
}

// lingueeFrequencyTier maps a candidate's frequency phrase to its tier.
func lingueeFrequencyTier(raw string) model.Frequency {
	phrase := strings.ToLower(raw)
	switch {
	case strings.Contains(phrase, lgFrequencyHighPhrase):
		return model.FrequencyHigh
	case strings.Contains(phrase, lgFrequencyMediumPhrase):
		return model.FrequencyMedium
	case strings.Contains(phrase, lgFrequencyLowPhrase):
		return model.FrequencyLow
	default:
		return model.FrequencyUnknown
	}
}

// absoluteLingueeURL turns a pronunciation path into an absolute URL. Bare
// paths are relative to the site's mp3 root.
func absoluteLingueeURL(path string) string {
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case strings.HasPrefix(path, "//"):
		return "https:" + path
	case strings.HasPrefix(path, "/"):
		return lingueeBase + path
	default:
		return lingueeBase + "/mp3/" + path
	}
}
