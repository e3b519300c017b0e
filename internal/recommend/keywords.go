package recommend

import (
	"regexp"
	"sort"
	"strings"
)

var (
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)
)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {}, "my": {}, "your": {},
	"his": {}, "its": {}, "our": {}, "their": {},
	"not": {}, "no": {}, "yes": {}, "if": {}, "when": {}, "where": {}, "why": {}, "how": {},
}

// ExtractKeywords returns the most frequent significant words in text. HTML
// tags and punctuation are stripped, stop words and words of three characters
// or fewer are dropped. Ties break on first appearance so the result is
// deterministic.
func ExtractKeywords(text string, n int) []string {
	clean := htmlTagRe.ReplaceAllString(strings.ToLower(text), "")
	clean = nonAlnumRe.ReplaceAllString(clean, "")

	freq := map[string]int{}
	firstSeen := map[string]int{}
	for i, word := range strings.Fields(clean) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, ok := freq[word]; !ok {
			firstSeen[word] = i
		}
		freq[word]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return words
}
