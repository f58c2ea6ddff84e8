// Package httpapi is the HTTP adapter over the broker core: publish and
// blocking-read endpoints for the three queue variants, websocket and SSE
// subscription streams backed by the fan-out hub, and the bulk test-data
// generator. All broker semantics live in pkg/memq and pkg/fanout; this
// package only parses requests and translates results.
package httpapi

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/brokerkit/pkg/fanout"
	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

// Deps carries everything the router needs.
type Deps struct {
	Broker *memq.Broker
	Hub    *fanout.Hub
	Logger *slog.Logger

	// StreamKeepAlive is the interval between keepalive comments on SSE
	// streams and ping frames on websockets. Zero selects a default.
	StreamKeepAlive time.Duration
}

const defaultStreamKeepAlive = 15 * time.Second

type server struct {
	broker    *memq.Broker
	hub       *fanout.Hub
	log       *slog.Logger
	keepAlive time.Duration
}

func newServer(d Deps) *server {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	keepAlive := d.StreamKeepAlive
	if keepAlive <= 0 {
		keepAlive = defaultStreamKeepAlive
	}
	return &server{
		broker:    d.Broker,
		hub:       d.Hub,
		log:       log,
		keepAlive: keepAlive,
	}
}
