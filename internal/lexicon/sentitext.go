package lexicon

import (
	"strings"
	"unicode/utf8"
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// sentiText is the tokenised form of a text: whitespace-separated tokens longer than one
// character, with edge punctuation stripped while keeping contractions and most emoticons.
type sentiText struct {
	words   []string
	capDiff bool
}

func newSentiText(text string) *sentiText {
	words := wordsAndEmoticons(text)
	return &sentiText{
		words:   words,
		capDiff: allCapDifferential(words),
	}
}

func wordsAndEmoticons(text string) []string {
	bare := make(map[string]struct{})
	for _, w := range strings.Fields(removePunctuation(text)) {
		if runeLen(w) > 1 {
			bare[w] = struct{}{}
		}
	}

	var words []string
	for _, token := range strings.Fields(text) {
		if runeLen(token) <= 1 {
			continue
		}
		words = append(words, stripEdgePunctuation(token, bare))
	}
	return words
}

// stripEdgePunctuation maps "cat," and ",cat" to "cat" when "cat" appears in the
// punctuation-free text and the stripped run is a known punctuation sequence.
// A trailing run takes precedence over a leading one.
func stripEdgePunctuation(token string, bare map[string]struct{}) string {
	if i := strings.LastIndexFunc(token, notPunct); i >= 0 {
		_, size := utf8.DecodeRuneInString(token[i:])
		if word, ok := bareWord(token[:i+size], token[i+size:], bare); ok {
			return word
		}
	}

	if i := strings.IndexFunc(token, notPunct); i > 0 {
		if word, ok := bareWord(token[i:], token[:i], bare); ok {
			return word
		}
	}

	return token
}

func bareWord(word, run string, bare map[string]struct{}) (string, bool) {
	if _, ok := edgePunctuation[run]; !ok {
		return "", false
	}
	if _, ok := bare[word]; !ok {
		return "", false
	}
	return word, true
}

// allCapDifferential reports whether some, but not all, words are ALL CAPS.
func allCapDifferential(words []string) bool {
	allCaps := 0
	for _, w := range words {
		if isUpper(w) {
			allCaps++
		}
	}
	diff := len(words) - allCaps
	return diff > 0 && diff < len(words)
}

func removePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isPunct(r) {
			return -1
		}
		return r
	}, text)
}

func isPunct(r rune) bool {
	return strings.ContainsRune(asciiPunctuation, r)
}

func notPunct(r rune) bool {
	return !isPunct(r)
}
