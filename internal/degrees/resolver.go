package degrees

import (
	"regexp"
	"sort"
	"strings"

	"cap2vivo/internal/wordset"
)

// Scores for acronym matches. First token beats second token beats a
// prefix/suffix match on the concatenation.
const (
	scoreFirstAcro   = 99
	scoreSecondAcro  = 88
	scorePartialAcro = 77
	scoreFullWordset = 99
)

const maxMerged = 20
const maxGuesses = 3

var tokenRuns = regexp.MustCompile(`[^\w.]+`)

type scored struct {
	abbrev string
	score  int
}

// Resolve maps a noisy free-text degree description to up to three ranked
// standard abbreviations. Deterministic and side-effect free: two passes of
// scoring (acronym shape + significant words, then a capital-letter
// plausibility re-rank), each sorted stably so ties keep catalog order.
func (c *Catalog) Resolve(text string) []string {
	cleaned := strings.TrimSpace(strings.NewReplacer(`"`, "", `'`, "").Replace(text))
	if cleaned == "" {
		return nil
	}

	capitals := wordset.Capitals(cleaned)
	acros := acronymCandidates(cleaned)
	words := wordset.Wordset(wordset.SplitWords(cleaned))

	var candidates []scored
	for _, entry := range c.entries {
		if len(acros) > 0 && acros[0] == entry.acronym {
			candidates = append(candidates, scored{entry.Abbreviation, scoreFirstAcro})
		}
		if len(acros) > 1 && acros[1] == entry.acronym {
			candidates = append(candidates, scored{entry.Abbreviation, scoreSecondAcro})
		}
		joined := strings.Join(acros, "")
		if joined != "" && entry.acronym != "" &&
			(strings.HasPrefix(joined, entry.acronym) || strings.HasSuffix(joined, entry.acronym)) {
			candidates = append(candidates, scored{entry.Abbreviation, scorePartialAcro})
		}
	}
	for _, entry := range c.entries {
		if len(entry.words) > 0 && wordset.Subset(entry.words, words) {
			candidates = append(candidates, scored{entry.Abbreviation, scoreFullWordset})
		} else if n := wordset.Intersection(entry.words, words); n > 0 {
			candidates = append(candidates, scored{entry.Abbreviation, n})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	merged := dedupe(candidates, maxMerged)

	// Re-rank by acronym-shape plausibility against the input's capitals.
	capitalSet := make(map[rune]struct{})
	for _, r := range capitals {
		capitalSet[r] = struct{}{}
	}
	var reranked []scored
	for _, cand := range merged {
		abbrevCaps := wordset.Capitals(cand.abbrev)
		if len(abbrevCaps) > len(capitals) {
			continue
		}
		plausible := true
		for _, r := range abbrevCaps {
			if _, ok := capitalSet[r]; !ok {
				plausible = false
				break
			}
		}
		if !plausible {
			continue
		}
		reranked = append(reranked, scored{cand.abbrev, len(abbrevCaps)})
	}
	sort.SliceStable(reranked, func(i, j int) bool {
		return reranked[i].score > reranked[j].score
	})

	var guesses []string
	for _, cand := range reranked {
		guesses = append(guesses, cand.abbrev)
		if len(guesses) == maxGuesses {
			break
		}
	}
	return guesses
}

// acronymCandidates takes the first two tokens of the input, split on runs
// of non-word characters other than '.', strips the remaining non-word
// characters and uppercases so "Ph.D." compares equal to acronym "PHD".
func acronymCandidates(s string) []string {
	var tokens []string
	for _, token := range tokenRuns.Split(s, -1) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	var acros []string
	for _, token := range tokens {
		stripped := strings.ToUpper(nonWord.ReplaceAllString(token, ""))
		if stripped != "" {
			acros = append(acros, stripped)
		}
	}
	return acros
}

// dedupe keeps the highest-ranked occurrence of each abbreviation.
func dedupe(candidates []scored, limit int) []scored {
	seen := make(map[string]struct{})
	var out []scored
	for _, cand := range candidates {
		if _, ok := seen[cand.abbrev]; ok {
			continue
		}
		seen[cand.abbrev] = struct{}{}
		out = append(out, cand)
		if len(out) == limit {
			break
		}
	}
	return out
}
