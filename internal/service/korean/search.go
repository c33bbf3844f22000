package korean

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/fuzzy"
)

// Search returns the words and sentences whose Korean or English text
// matches query. Source items come first, then the store's, and the
// relative order is kept. A blank query is a validation error.
func (s *Service) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("q", "Search keyword is required")
	}

	// One snapshot for both lists, so a reload between them cannot mix data.
	entries := s.entries.Entries(ctx)
	words := append(toDictionaryWords(entries), s.store.Words()...)
	sentences := append(toDictionarySentences(entries), s.store.Sentences()...)

	var matchedWords []domain.DictionaryWord
	for _, w := range words {
		if fuzzy.Match(w.Korean, query) || fuzzy.Match(w.English, query) {
			matchedWords = append(matchedWords, w)
		}
	}

	var matchedSentences []domain.DictionarySentence
	for _, sn := range sentences {
		if fuzzy.Match(sn.Korean, query) || fuzzy.Match(sn.English, query) {
			matchedSentences = append(matchedSentences, sn)
		}
	}

	result := domain.NewSearchResult(matchedWords, matchedSentences)
	s.log.DebugContext(ctx, "search",
		slog.String("query", query),
		slog.Int("words", len(result.Words)),
		slog.Int("sentences", len(result.Sentences)),
	)

	return result, nil
}
