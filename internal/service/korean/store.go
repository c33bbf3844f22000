package korean

import (
	"slices"
	"sync"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

// Store holds words and sentences that are searched in addition to the ones
// derived from the data source. It lives as long as the process.
type Store struct {
	mu        sync.RWMutex
	words     []domain.DictionaryWord
	sentences []domain.DictionarySentence
}

// NewStore creates a Store seeded with the given items. Both may be nil.
func NewStore(words []domain.DictionaryWord, sentences []domain.DictionarySentence) *Store {
	return &Store{
		words:     slices.Clone(words),
		sentences: slices.Clone(sentences),
	}
}

// AddWord appends a word.
func (s *Store) AddWord(w domain.DictionaryWord) {
	s.mu.Lock()
	s.words = append(s.words, w)
	s.mu.Unlock()
}

// AddSentence appends a sentence.
func (s *Store) AddSentence(sn domain.DictionarySentence) {
	s.mu.Lock()
	s.sentences = append(s.sentences, sn)
	s.mu.Unlock()
}

// Words returns a copy of the stored words in insertion order.
func (s *Store) Words() []domain.DictionaryWord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.words)
}

// Sentences returns a copy of the stored sentences in insertion order.
func (s *Store) Sentences() []domain.DictionarySentence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sentences)
}
