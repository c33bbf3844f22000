package korean

import (
	"fmt"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

var (
	// ErrNoFlashcards is returned when the data source yields no entries.
	ErrNoFlashcards = fmt.Errorf("no flashcard data: %w", domain.ErrNotFound)
	// ErrNoSentences is returned when no entry qualifies for the sentence game.
	ErrNoSentences = fmt.Errorf("no sentence game data: %w", domain.ErrNotFound)
)
