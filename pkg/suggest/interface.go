// Package suggest predicts the next word of a sentence and completes word prefixes.
package suggest

// IPredictor defines the interface for next-word predictors
type IPredictor interface {
	// Predict returns up to limit likely next words for context
	Predict(context string, limit int) []string
}

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// Stats returns statistics about the loaded words
	Stats() map[string]int
}
