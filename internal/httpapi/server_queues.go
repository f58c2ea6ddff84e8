package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

// pathVariants maps URL segments to queue variants. The structure-named
// segments are the primary API; the canonical variant names are aliases.
var pathVariants = map[string]memq.Variant{
	"queue":    memq.VariantFifo,
	"fifo":     memq.VariantFifo,
	"list":     memq.VariantIndexed,
	"indexed":  memq.VariantIndexed,
	"deque":    memq.VariantRotating,
	"rotating": memq.VariantRotating,
}

func variantFromPath(r *http.Request) (memq.Variant, bool) {
	v, ok := pathVariants[chi.URLParam(r, "variant")]
	return v, ok
}

// handlePublish appends the request body to every queue instance that
// already exists for the topic in the variant's registry, and fans it out to
// every live subscriber mailbox on the topic. A topic nobody reads from yet
// drops the message for that variant.
func (s *server) handlePublish(w http.ResponseWriter, r *http.Request) {
	variant, ok := variantFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown queue variant %q", chi.URLParam(r, "variant")))
		return
	}
	topic := chi.URLParam(r, "topic")

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	delivered, err := s.broker.Publish(variant, topic, payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	listeners := s.hub.Publish(topic, payload)

	s.log.DebugContext(r.Context(), "message published",
		slog.String("variant", string(variant)),
		slog.String("topic", topic),
		slog.Int("queues", delivered),
		slog.Int("subscribers", listeners),
	)
	writeJSON(w, http.StatusOK, map[string]int{"queues": delivered, "subscribers": listeners})
}

// handleRead blocks until the addressed queue instance can satisfy the take,
// then returns the removed payload as the response body. The instance is
// created on first reference. The offset query parameter addresses a
// position in the current contents for the list and deque variants; the
// fifo variant always removes the head, like its backing structure.
func (s *server) handleRead(w http.ResponseWriter, r *http.Request) {
	variant, ok := variantFromPath(r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown queue variant %q", chi.URLParam(r, "variant")))
		return
	}
	topic := chi.URLParam(r, "topic")
	queueName := chi.URLParam(r, "queue")

	offset := 0
	if variant != memq.VariantFifo {
		var err error
		if offset, err = offsetParam(r); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	q, err := s.broker.GetOrCreate(variant, topic, queueName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := q.Take(r.Context(), offset)
	if err != nil {
		// The only non-validation failure is the client going away while
		// blocked; there is nobody left to answer.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.log.DebugContext(r.Context(), "read abandoned",
				slog.String("variant", string(variant)),
				slog.String("topic", topic),
				slog.String("queue", queueName),
			)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writePayload(w, payload)
}

// offsetParam parses the offset query parameter, defaulting to the head.
func offsetParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("offset must be a non-negative integer, but was %q", raw)
	}
	return n, nil
}
