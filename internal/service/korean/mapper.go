package korean

import "github.com/heartmarshall/hangeul-backend/internal/domain"

// minSentenceParts is the fewest tokens a sentence needs to be playable.
const minSentenceParts = 3

// toFlashcard copies entry into a typed flashcard. It never filters.
func toFlashcard(entry domain.RawEntry) domain.FlashcardItem {
	return domain.FlashcardItem{
		ID:             domain.SafeParseInt(entry.ID, 0),
		Korean:         domain.SafeString(entry.Korean, ""),
		English:        domain.SafeString(entry.English, ""),
		SampleSentence: domain.SafeString(entry.SampleSentence, ""),
	}
}

// toSentenceGameItem builds a game item from entry. ok is false when the
// sample sentence has no delimiter or its Korean side has fewer than
// minSentenceParts tokens.
func toSentenceGameItem(entry domain.RawEntry) (item domain.SentenceGameItem, ok bool) {
	korean, english := domain.SplitSentence(entry.SampleSentence)
	if korean == "" {
		return domain.SentenceGameItem{}, false
	}

	parts := domain.SentenceTokens(korean)
	if len(parts) < minSentenceParts {
		return domain.SentenceGameItem{}, false
	}

	return domain.SentenceGameItem{
		ID:            domain.SafeParseInt(entry.ID, 0),
		Word:          domain.SafeString(entry.Korean, ""),
		Meaning:       domain.SafeString(entry.English, ""),
		Sentence:      korean,
		Translation:   english,
		SentenceParts: parts,
	}, true
}

func toDictionaryWord(card domain.FlashcardItem) domain.DictionaryWord {
	return domain.DictionaryWord{
		ID:       card.ID,
		Korean:   card.Korean,
		English:  card.English,
		Category: domain.DefaultWordCategory,
	}
}

func toDictionarySentence(item domain.SentenceGameItem) domain.DictionarySentence {
	return domain.DictionarySentence{
		ID:      item.ID,
		Korean:  item.Sentence,
		English: item.Translation,
		Words:   []int{},
	}
}

func toFlashcards(entries []domain.RawEntry) []domain.FlashcardItem {
	cards := make([]domain.FlashcardItem, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, toFlashcard(e))
	}
	return cards
}

func toSentenceGameItems(entries []domain.RawEntry) []domain.SentenceGameItem {
	items := make([]domain.SentenceGameItem, 0, len(entries))
	for _, e := range entries {
		if item, ok := toSentenceGameItem(e); ok {
			items = append(items, item)
		}
	}
	return items
}

func toDictionaryWords(entries []domain.RawEntry) []domain.DictionaryWord {
	cards := toFlashcards(entries)
	words := make([]domain.DictionaryWord, 0, len(cards))
	for _, c := range cards {
		words = append(words, toDictionaryWord(c))
	}
	return words
}

func toDictionarySentences(entries []domain.RawEntry) []domain.DictionarySentence {
	items := toSentenceGameItems(entries)
	sentences := make([]domain.DictionarySentence, 0, len(items))
	for _, it := range items {
		sentences = append(sentences, toDictionarySentence(it))
	}
	return sentences
}
