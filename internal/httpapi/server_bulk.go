package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

// handleBulkGenerate is load-test support: the request body is an integer
// count, and that many random numeric payloads are generated into each of
// the three variants' instances for the addressed (topic, queue) pair,
// creating the instances if needed. Far faster than pushing messages through
// the publish API one at a time.
func (s *server) handleBulkGenerate(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	queueName := chi.URLParam(r, "queue")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("you must POST an integer, but the body was %q", body))
		return
	}

	for _, variant := range memq.Variants {
		q, err := s.broker.GetOrCreate(variant, topic, queueName)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		for range count {
			q.Append([]byte(strconv.Itoa(rand.IntN(1025))))
		}
	}

	s.log.InfoContext(r.Context(), "bulk messages generated",
		slog.String("topic", topic),
		slog.String("queue", queueName),
		slog.Int("count", count),
	)
	writeJSON(w, http.StatusOK, map[string]int{"generated": count})
}
