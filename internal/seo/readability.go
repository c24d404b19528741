package seo

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`\b[\w'-]+\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// countSyllables approximates syllables by counting vowel-group starts.
// A trailing "e" is dropped when the word has more than one group.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// fleschReadingEase computes the Flesch Reading Ease score for text.
// The result is unbounded: very dense text can go negative and trivial
// text can exceed 100.
func fleschReadingEase(text string) float64 {
	sentenceCount := 0
	for _, s := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}
	words := wordPattern.FindAllString(text, -1)

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	if syllables == 0 {
		syllables = 1
	}
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	wordCount := len(words)
	if wordCount < 1 {
		wordCount = 1
	}

	return 206.835 - 1.015*(float64(wordCount)/float64(sentenceCount)) - 84.6*(float64(syllables)/float64(wordCount))
}
