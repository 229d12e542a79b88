package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// wordReferenceBase prefixes the relative audio paths the page embeds.
const wordReferenceBase = "https://www.wordreference.com"

var (
	// audioMapRe captures the script literal the page's audio player reads,
	// e.g. var audioFiles = {'uk':'/audio/en/uk/en069947.mp3', ...};
	audioMapRe = regexp.MustCompile(`var\s+audioFiles\s*=\s*(\{[^}]*\})`)

	// audioPathRe finds bare pronunciation paths anywhere in the page.
	audioPathRe = regexp.MustCompile(`/audio/[^"'\s>]+\.mp3`)
)

// wordReferenceAudioLinks extracts pronunciation URLs from the raw page
// text. Two producers run independently and their outputs are merged with
// deduplication: the audioFiles script literal, and a plain path scan that
// keeps working if the site reshapes the script. Every link comes back as
// an absolute URL.
func wordReferenceAudioLinks(html string) []string {
	var links []string
	seen := make(map[string]bool)
	add := func(path string) {
		url := absoluteWordReferenceURL(path)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		links = append(links, url)
	}

	for _, path := range audioMapPaths(html) {
		add(path)
	}
	for _, path := range audioPathRe.FindAllString(html, -1) {
		add(path)
	}
	return links
}

// audioMapPaths decodes the audioFiles literal. The page writes it with
// single quotes, so those are normalized to double quotes before decoding.
// The decoder walks tokens instead of unmarshaling into a map so the paths
// keep their document order. The literal is a flat string map; anything
// else is treated as malformed and yields nothing, leaving the path scan
// to salvage what it can.
func audioMapPaths(html string) []string {
	match := audioMapRe.FindStringSubmatch(html)
	if match == nil {
		return nil
	}
	literal := strings.ReplaceAll(match[1], "'", `"`)

	dec := json.NewDecoder(strings.NewReader(literal))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var paths []string
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil
		}
		value, err := dec.Token()
		if err != nil {
			return nil
		}
		path, ok := value.(string)
		if !ok {
			return nil
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// absoluteWordReferenceURL turns a pronunciation path into an absolute
// URL. Already-absolute and protocol-relative values are respected.
func absoluteWordReferenceURL(path string) string {
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case strings.HasPrefix(path, "//"):
		return "https:" + path
	case strings.HasPrefix(path, "/"):
		return wordReferenceBase + path
	default:
		return wordReferenceBase + "/" + path
	}
}
