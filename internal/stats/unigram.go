package stats

import "sort"

// UnigramEntry is a token with its raw count and relative frequency.
type UnigramEntry struct {
	Token     string  `json:"token"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// Unigram is a frequency table ordered by descending count, ties in
// first-encounter order.
type Unigram struct {
	entries []UnigramEntry
	index   map[string]int
	total   int
}

func newUnigram(utterances [][]string) *Unigram {
	counts := countTokens(utterances)

	u := &Unigram{
		entries: make([]UnigramEntry, len(counts)),
		index:   make(map[string]int, len(counts)),
	}
	for _, c := range counts {
		u.total += c.Count
	}
	for i, c := range counts {
		u.entries[i] = UnigramEntry{
			Token:     c.Token,
			Count:     c.Count,
			Frequency: float64(c.Count) / float64(u.total),
		}
		u.index[c.Token] = i
	}

	return u
}

// Len returns the number of distinct tokens.
func (u *Unigram) Len() int { return len(u.entries) }

// Total returns the number of token occurrences.
func (u *Unigram) Total() int { return u.total }

// Entries returns the table, most frequent first.
func (u *Unigram) Entries() []UnigramEntry {
	out := make([]UnigramEntry, len(u.entries))
	copy(out, u.entries)
	return out
}

func (u *Unigram) Lookup(token string) (UnigramEntry, bool) {
	i, ok := u.index[token]
	if !ok {
		return UnigramEntry{}, false
	}
	return u.entries[i], true
}

// Hapax returns the number of tokens seen exactly once.
func (u *Unigram) Hapax() int {
	n := 0
	for _, e := range u.entries {
		if e.Count == 1 {
			n++
		}
	}
	return n
}

// TokenCount is a token with its raw count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// countTokens counts every token of utterances, most frequent first. Ties
// keep the order in which tokens were first seen.
func countTokens(utterances [][]string) []TokenCount {
	index := make(map[string]int)
	var counts []TokenCount

	for _, utt := range utterances {
		for _, tok := range utt {
			if i, ok := index[tok]; ok {
				counts[i].Count++
				continue
			}
			index[tok] = len(counts)
			counts = append(counts, TokenCount{Token: tok, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}
