package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the broker's HTTP handler.
//
// The URL layout mirrors the backing structure of each variant:
//
//	POST /queue/{topic}           publish to the fifo variant
//	POST /list/{topic}            publish to the indexed variant
//	POST /deque/{topic}           publish to the rotating variant
//	GET  /queue/{topic}/{queue}   blocking fifo read
//	GET  /list/{topic}/{queue}    blocking indexed read, ?offset=N
//	GET  /deque/{topic}/{queue}   blocking rotating read, ?offset=N
//	GET  /ws                      websocket subscription stream
//	GET  /sse/{topic}             SSE subscription stream
//	POST /make_it_slow_number_one/{topic}/{queue}  bulk test-data generator
//
// The canonical variant names fifo, indexed and rotating are accepted as
// aliases of queue, list and deque.
func NewRouter(d Deps) http.Handler {
	s := newServer(d)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/ws", s.handleSubscribeWS)
	r.Get("/sse/{topic}", s.handleSubscribeSSE)
	r.Post("/make_it_slow_number_one/{topic}/{queue}", s.handleBulkGenerate)
	r.Post("/{variant}/{topic}", s.handlePublish)
	r.Get("/{variant}/{topic}/{queue}", s.handleRead)

	return r
}
