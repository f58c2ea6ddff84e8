package httpapi

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleSubscribeWS serves the websocket subscription stream. The client's
// first text frame names the topic; from then on every payload published to
// that topic is forwarded as its own frame. The mailbox is registered before
// the first forward and released exactly once when the connection drops,
// however it drops.
func (s *server) handleSubscribeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}
	defer conn.Close()

	_, topicFrame, err := conn.ReadMessage()
	if err != nil {
		return
	}
	topic := string(topicFrame)
	if topic == "" {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "topic must not be empty"),
			time.Now().Add(time.Second))
		return
	}

	sub := s.hub.Subscribe(topic)
	defer sub.Close()

	s.log.InfoContext(r.Context(), "subscriber connected",
		slog.String("transport", "websocket"),
		slog.String("topic", topic),
		slog.String("subscriber_id", sub.ID()),
	)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client sends nothing after the topic frame; this read loop exists
	// to notice the connection closing and release the blocked mailbox read.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	// Forward mailbox payloads to the write loop. An unbuffered channel
	// keeps at most one in-flight payload, which is only dropped when the
	// client is already gone.
	payloads := make(chan []byte)
	go func() {
		defer close(payloads)
		for {
			payload, err := sub.Next(ctx)
			if err != nil {
				return
			}
			select {
			case payloads <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-payloads:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-keepAlive.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}

// handleSubscribeSSE serves the same subscription stream over Server-Sent
// Events: one "message" event per payload, keepalive comments in between.
// Each mailbox read is bounded by the keepalive interval so the stream keeps
// proving liveness through idle periods; a timed-out read leaves the mailbox
// untouched.
func (s *server) handleSubscribeSSE(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.hub.Subscribe(topic)
	defer sub.Close()

	s.log.InfoContext(r.Context(), "subscriber connected",
		slog.String("transport", "sse"),
		slog.String("topic", topic),
		slog.String("subscriber_id", sub.ID()),
	)

	ctx := r.Context()
	bw := bufio.NewWriterSize(w, 16*1024)

	for {
		next, nextCancel := context.WithTimeout(ctx, s.keepAlive)
		payload, err := sub.Next(next)
		nextCancel()

		switch {
		case err == nil:
			if err := writeSSE(bw, "message", string(payload)); err != nil {
				return
			}
		case ctx.Err() != nil:
			return
		default:
			// Keepalive window elapsed without a message.
			if _, err := bw.WriteString(": keepalive\n\n"); err != nil {
				return
			}
		}

		if err := bw.Flush(); err != nil {
			return
		}
		flusher.Flush()
	}
}
