package domain

import "strings"

// SentenceDelimiter separates the Korean and English halves of a sample sentence.
const SentenceDelimiter = "/"

// SplitSentence extracts the Korean sentence and its English translation from a
// combined "Korean / English" field. Only the first delimiter splits; anything
// after it, further slashes included, is English. Both halves are trimmed.
// Without a delimiter both results are empty.
func SplitSentence(sample string) (korean, english string) {
	before, after, found := strings.Cut(sample, SentenceDelimiter)
	if !found {
		return "", ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// SentenceTokens splits a Korean sentence on single spaces. Runs of spaces
// produce empty tokens, matching how the game data has always been cut.
func SentenceTokens(sentence string) []string {
	return strings.Split(sentence, " ")
}
