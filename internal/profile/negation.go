package profile

import "strings"

// NegationDetector decides whether a skill match should be suppressed
// because the text negates it.
type NegationDetector interface {
	// Suppresses reports whether a match for the given phrase in text
	// should be discarded.
	Suppresses(text, phrase string) bool
}

// GlobalNegation suppresses a match when any negation phrase occurs
// anywhere in the text, regardless of where the matched phrase sits.
// "я не знаю питон, но хорошо пишу на java" therefore suppresses the
// java tag too. Kept for compatibility with the historical behavior; a
// scoped detector can replace it without touching the extractor.
type GlobalNegation struct {
	phrases []string
}

// NewGlobalNegation creates a detector over the given phrase list.
func NewGlobalNegation(phrases []string) *GlobalNegation {
	return &GlobalNegation{phrases: phrases}
}

// Suppresses implements NegationDetector.
func (g *GlobalNegation) Suppresses(text, _ string) bool {
	for _, neg := range g.phrases {
		if strings.Contains(text, neg) {
			return true
		}
	}
	return false
}
