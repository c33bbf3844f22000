package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/hangeul-backend/internal/config"
	"github.com/heartmarshall/hangeul-backend/internal/transport/middleware"
	"github.com/heartmarshall/hangeul-backend/internal/transport/response"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	ShowStack bool
	Korean    *KoreanHandler
	Health    *HealthHandler
	Query     *QueryValidator
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger, d.ShowStack),
		middleware.CORS(d.CORS),
	))
	r.Use(
		chimw.SetHeader("X-Content-Type-Options", "nosniff"),
		chimw.SetHeader("X-Frame-Options", "SAMEORIGIN"),
		chimw.SetHeader("Referrer-Policy", "no-referrer"),
		chimw.SetHeader("X-DNS-Prefetch-Control", "off"),
		chimw.SetHeader("Cross-Origin-Resource-Policy", "same-origin"),
		chimw.Compress(5),
	)

	r.Use(chimw.GetHead)

	// A known path with an unsupported method is just another unmatched route.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/", Index)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/korean", func(r chi.Router) {
		r.Use(d.Query.Pagination)
		r.Get("/flashcards", d.Korean.Flashcards)
		r.Get("/sentence-game", d.Korean.SentenceGame)
		r.Get("/search", d.Korean.Search)
	})

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, r, http.StatusNotFound, "Route not found - "+r.URL.RequestURI())
}

// Index handles GET /.
func Index(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "Korean Learning API is running"})
}
