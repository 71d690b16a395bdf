package interview

import "strings"

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// IsGibberish flags free-text answers that are keyboard mashing rather than an
// attempt at the question. Heuristics: letter-free input, an extremely
// unbalanced vowel/consonant ratio, a tiny character alphabet repeated over a
// long string, or a long run of text with no spaces at all.
func IsGibberish(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))

	var vowelCount, consonantCount int
	for _, r := range text {
		switch {
		case strings.ContainsRune(vowels, r):
			vowelCount++
		case strings.ContainsRune(consonants, r):
			consonantCount++
		}
	}

	totalLetters := vowelCount + consonantCount
	if totalLetters == 0 {
		return true
	}

	if totalLetters > 5 {
		ratio := float64(vowelCount) / float64(totalLetters)
		if ratio < 0.1 || ratio > 0.8 {
			return true
		}
	}

	distinct := make(map[rune]struct{})
	for _, r := range strings.ReplaceAll(text, " ", "") {
		distinct[r] = struct{}{}
	}
	if len(distinct) < 4 && len(text) > 8 {
		return true
	}

	if len(text) > 15 && !strings.Contains(text, " ") {
		return true
	}

	return false
}
