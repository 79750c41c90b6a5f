package mock

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"hunt/internal/hunt"
)

// NewHandler builds the mock question endpoint for a hunt.
func NewHandler(h Hunt, logger zerolog.Logger) http.Handler {
	hd := &handler{hunt: h, log: logger}
	router := mux.NewRouter()
	router.Use(hd.logRequests)
	router.HandleFunc("/{id:.+}", hd.handleQuestion).Methods(http.MethodGet)
	router.HandleFunc("/{id:.+}", hd.handleAnswer).Methods(http.MethodPost)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})
	return router
}

type handler struct {
	hunt Hunt
	log  zerolog.Logger
}

func (h *handler) handleQuestion(w http.ResponseWriter, r *http.Request) {
	stop, ok := h.hunt.Lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, hunt.Question{
		Question:     stop.Question,
		ResponseType: stop.ResponseType,
		Choices:      stop.Choices,
	})
}

func (h *handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	stop, ok := h.hunt.Lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	query := r.URL.Query()
	if !query.Has("answer") {
		writeError(w, http.StatusBadRequest, "missing_answer")
		return
	}
	result := hunt.SubmitResult{IsCorrect: strings.TrimSpace(query.Get("answer")) == stop.Answer}
	if result.IsCorrect {
		result.Coordinates = hunt.Coordinates(stop.Coordinates)
	}
	writeJSON(w, http.StatusOK, result)
}

// logRequests records each request once it has been served.
func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		h.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(started)).
			Msg("served")
	})
}
