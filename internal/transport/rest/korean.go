package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/transport/response"
)

// koreanService defines the minimal interface needed by KoreanHandler.
type koreanService interface {
	Flashcards(ctx context.Context) ([]domain.FlashcardItem, error)
	SentenceGame(ctx context.Context) ([]domain.SentenceGameItem, error)
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
}

// KoreanHandler serves the /api/korean endpoints.
type KoreanHandler struct {
	svc koreanService
	log *slog.Logger
}

// NewKoreanHandler creates a KoreanHandler.
func NewKoreanHandler(svc koreanService, logger *slog.Logger) *KoreanHandler {
	return &KoreanHandler{svc: svc, log: logger.With("handler", "korean")}
}

// Flashcards handles GET /api/korean/flashcards.
func (h *KoreanHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.Flashcards(r.Context())
	if err != nil {
		h.handleError(w, r, err, "No flashcard data available", "Failed to retrieve flashcards")
		return
	}
	response.JSON(w, r, http.StatusOK, cards)
}

// SentenceGame handles GET /api/korean/sentence-game.
func (h *KoreanHandler) SentenceGame(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.SentenceGame(r.Context())
	if err != nil {
		h.handleError(w, r, err, "No valid sentence data available for the game", "Failed to retrieve sentence game data")
		return
	}
	response.JSON(w, r, http.StatusOK, items)
}

// Search handles GET /api/korean/search?q=.
func (h *KoreanHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			response.Fail(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "search failed", slog.String("error", err.Error()))
		response.Fail(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	response.OK(w, r, result)
}

func (h *KoreanHandler) handleError(w http.ResponseWriter, r *http.Request, err error, notFound, internal string) {
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(w, r, http.StatusNotFound, notFound)
		return
	}
	h.log.ErrorContext(r.Context(), "internal error",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	response.Error(w, r, http.StatusInternalServerError, internal)
}
