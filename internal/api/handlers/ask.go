package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/ports"
)

// AskHandler fronts the knowledge chain for health questions.
type AskHandler struct {
	Knowledge ports.KnowledgeSource
}

// Ask answers a free-text query. Every source in the chain coming up empty is
// a normal outcome rendered as an explicit no-results message.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.AskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "missing_query")
		return
	}

	answer, err := h.Knowledge.Ask(r.Context(), query)
	if errors.Is(err, ports.ErrNoAnswer) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"error":   "no_results",
			"message": "No results found. Try rephrasing your query.",
		})
		return
	}
	if err != nil {
		log.Printf("knowledge chain failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AskResponse{
		Answer:    answer.Text,
		Source:    answer.Source,
		SourceURL: answer.SourceURL,
	})
}
