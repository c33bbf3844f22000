package domain

// RawEntry is one row of the vocabulary data source. Fields are kept verbatim;
// typing and defaulting happen when the entry is projected into a view.
type RawEntry struct {
	ID             string
	Korean         string
	English        string
	SampleSentence string
}

// FlashcardItem is a typed projection of a RawEntry served to the flashcard page.
type FlashcardItem struct {
	ID             int    `json:"id"`
	Korean         string `json:"korean"`
	English        string `json:"english"`
	SampleSentence string `json:"sample_sentence"`
}

// SentenceGameItem pairs a word with an example sentence whose word order the
// player has to reconstruct. SentenceParts is the correct order.
type SentenceGameItem struct {
	ID            int      `json:"id"`
	Word          string   `json:"word"`
	Meaning       string   `json:"meaning"`
	Sentence      string   `json:"sentence"`
	Translation   string   `json:"translation"`
	SentenceParts []string `json:"sentenceParts"`
}

// DefaultWordCategory is assigned to every word derived from the data source.
const DefaultWordCategory = "vocabulary"

// DictionaryWord is the search-facing view of a vocabulary entry.
type DictionaryWord struct {
	ID           int    `json:"id"`
	Korean       string `json:"korean"`
	English      string `json:"english"`
	Romanization string `json:"romanization"`
	Category     string `json:"category"`
}

// DictionarySentence is the search-facing view of an example sentence.
// Words holds ids of linked DictionaryWords.
type DictionarySentence struct {
	ID      int    `json:"id"`
	Korean  string `json:"korean"`
	English string `json:"english"`
	Words   []int  `json:"words"`
}

// SearchResult holds the matched words and sentences in source order.
type SearchResult struct {
	Words     []DictionaryWord     `json:"words"`
	Sentences []DictionarySentence `json:"sentences"`
	Total     int                  `json:"total"`
}

// NewSearchResult builds a SearchResult with Total derived from both lists.
// Nil slices are replaced with empty ones so they encode as [].
func NewSearchResult(words []DictionaryWord, sentences []DictionarySentence) *SearchResult {
	if words == nil {
		words = []DictionaryWord{}
	}
	if sentences == nil {
		sentences = []DictionarySentence{}
	}
	return &SearchResult{
		Words:     words,
		Sentences: sentences,
		Total:     len(words) + len(sentences),
	}
}
