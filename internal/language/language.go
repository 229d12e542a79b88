package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
)

// Language describes one language the resolver knows about.
type Language struct {
	// Code is the canonical short code, e.g. "es".
	Code string

	// Name is the lowercase English name, e.g. "spanish". Linguee builds
	// its URLs from these names.
	Name string

	// Alternates are legacy URL spellings WordReference accepts for this
	// language, tried after Code when a page comes back empty.
	Alternates []string
}

// languages is the full resolver table. It covers the union of both sites'
// language sets; the per-site pair tables in pairs.go narrow it down.
var languages = []Language{
	{Code: "en", Name: "english"},
	{Code: "es", Name: "spanish"},
	{Code: "fr", Name: "french"},
	{Code: "de", Name: "german"},
	{Code: "it", Name: "italian"},
	{Code: "pt", Name: "portuguese", Alternates: []string{"po"}},
	{Code: "nl", Name: "dutch"},
	{Code: "sv", Name: "swedish"},
	{Code: "da", Name: "danish"},
	{Code: "fi", Name: "finnish"},
	{Code: "pl", Name: "polish"},
	{Code: "cs", Name: "czech", Alternates: []string{"cz"}},
	{Code: "sk", Name: "slovak"},
	{Code: "ro", Name: "romanian"},
	{Code: "hu", Name: "hungarian"},
	{Code: "bg", Name: "bulgarian"},
	{Code: "sl", Name: "slovene"},
	{Code: "lt", Name: "lithuanian"},
	{Code: "lv", Name: "latvian"},
	{Code: "et", Name: "estonian"},
	{Code: "mt", Name: "maltese"},
	{Code: "el", Name: "greek", Alternates: []string{"gr"}},
	{Code: "tr", Name: "turkish"},
	{Code: "ru", Name: "russian"},
	{Code: "ar", Name: "arabic"},
	{Code: "zh", Name: "chinese", Alternates: []string{"ch"}},
	{Code: "ja", Name: "japanese"},
	{Code: "ko", Name: "korean"},
}

var codeIndex, nameIndex = buildIndexes()

func buildIndexes() (map[string]Language, map[string]string) {
	codes := make(map[string]Language, len(languages))
	names := make(map[string]string, len(languages))
	for _, lang := range languages {
		codes[lang.Code] = lang
		names[lang.Name] = lang.Code
	}
	return codes, names
}

// Resolve canonicalizes a user-supplied language identifier to its short
// code. It accepts short codes ("es"), full English names ("spanish", any
// case), and BCP 47 tags with region or script qualifiers ("es-MX",
// "pt_BR"). Unrecognized input returns an error wrapping
// ErrUnsupportedLanguage with examples of valid values.
func Resolve(input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", fmt.Errorf("%w: empty value, use a code like en or a name like english", ErrUnsupportedLanguage)
	}

	if _, ok := codeIndex[normalized]; ok {
		return normalized, nil
	}
	if code, ok := nameIndex[normalized]; ok {
		return code, nil
	}

	// Region-qualified tags resolve through their base language.
	if tag, err := xlang.Parse(normalized); err == nil {
		base, _ := tag.Base()
		if _, ok := codeIndex[base.String()]; ok {
			return base.String(), nil
		}
	}

	return "", fmt.Errorf("%w: %q, use a code like en, es, fr, de or a name like english, spanish", ErrUnsupportedLanguage, input)
}

// Supported returns the resolver table in declaration order. The returned
// slice is a copy; mutating it does not affect resolution.
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// URLCodes returns the URL spellings to try for a code when building
// WordReference URLs, the canonical code first. Codes without legacy
// alternates come back as a single-element slice.
func URLCodes(code string) []string {
	lang, ok := codeIndex[code]
	if !ok {
		return []string{code}
	}
	out := make([]string, 0, 1+len(lang.Alternates))
	out = append(out, lang.Code)
	out = append(out, lang.Alternates...)
	return out
}

// EnglishName returns the lowercase English name for a resolved code.
// The second return is false when the code is not in the table.
func EnglishName(code string) (string, bool) {
	lang, ok := codeIndex[code]
	if !ok {
		return "", false
	}
	return lang.Name, true
}

// DisplayName returns the Title-cased English name for human-facing
// output, falling back to the code itself for unknown input.
func DisplayName(code string) string {
	lang, ok := codeIndex[code]
	if !ok {
		return code
	}
	return cases.Title(xlang.English).String(lang.Name)
}
