package ports

// Normalizer defines the interface for turning raw text into normalized words.
type Normalizer interface {
	// Normalize returns the words of text in order. The result is never nil.
	Normalize(text string) []string
}
