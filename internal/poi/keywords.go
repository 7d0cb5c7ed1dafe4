package poi

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// UnnamedPrefix starts every synthesized display name, e.g.
// "Unnamed building". Synthesized names never produce keywords.
const UnnamedPrefix = "Unnamed"

// wordSplitter breaks a display name into tokens. A run of whitespace
// and/or the characters / , - ( ) counts as one delimiter.
var wordSplitter = regexp.MustCompile(`[\s/,\-()]+`)

// Keywords derives the lowercase search tokens for a display name:
// the name's words of length > 1, plus the word-initial acronym when
// the name has more than one word and the acronym itself is longer
// than one letter. The result is deduplicated; order carries no
// meaning because consumers only do membership lookups.
//
// Names are NFC-normalized first so composed and decomposed forms of
// the same OSM name tokenize identically. Empty and synthesized
// "Unnamed ..." names yield an empty (non-nil) slice.
func Keywords(name string) []string {
	if name == "" || strings.HasPrefix(name, UnnamedPrefix) {
		return []string{}
	}

	words := wordSplitter.Split(norm.NFC.String(name), -1)

	keywords := make([]string, 0, len(words)+1)
	seen := make(map[string]struct{}, len(words)+1)
	add := func(token string) {
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		add(strings.ToLower(w))
	}

	// Splitting at the name's edges leaves empty tokens in words, so
	// the multi-word check counts the raw split, matching the acronym
	// to what a reader sees as "more than one word".
	if len(words) > 1 {
		var acronym []rune
		for _, w := range words {
			if w == "" {
				continue
			}
			r, _ := utf8.DecodeRuneInString(w)
			acronym = append(acronym, unicode.ToLower(r))
		}
		if len(acronym) > 1 {
			add(string(acronym))
		}
	}

	return keywords
}
