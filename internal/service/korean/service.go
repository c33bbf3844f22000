// Package korean shapes the cached vocabulary into flashcards, sentence game
// items and dictionary search results.
package korean

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

type entrySource interface {
	Entries(ctx context.Context) []domain.RawEntry
}

// Service implements the read-only Korean learning operations.
type Service struct {
	log     *slog.Logger
	entries entrySource
	store   *Store
}

// NewService creates a Service. A nil store means an empty one.
func NewService(logger *slog.Logger, entries entrySource, store *Store) *Service {
	if store == nil {
		store = NewStore(nil, nil)
	}
	return &Service{
		log:     logger.With("service", "korean"),
		entries: entries,
		store:   store,
	}
}

// Flashcards returns one flashcard per entry, in source order.
func (s *Service) Flashcards(ctx context.Context) ([]domain.FlashcardItem, error) {
	cards := toFlashcards(s.entries.Entries(ctx))
	if len(cards) == 0 {
		return nil, ErrNoFlashcards
	}
	return cards, nil
}

// SentenceGame returns the entries whose sample sentence is playable.
func (s *Service) SentenceGame(ctx context.Context) ([]domain.SentenceGameItem, error) {
	items := toSentenceGameItems(s.entries.Entries(ctx))
	if len(items) == 0 {
		return nil, ErrNoSentences
	}
	return items, nil
}

// Words returns the dictionary words derived from the data source.
func (s *Service) Words(ctx context.Context) []domain.DictionaryWord {
	return toDictionaryWords(s.entries.Entries(ctx))
}

// Sentences returns the dictionary sentences derived from the data source.
func (s *Service) Sentences(ctx context.Context) []domain.DictionarySentence {
	return toDictionarySentences(s.entries.Entries(ctx))
}
