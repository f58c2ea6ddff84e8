// Package httpserver wraps net/http.Server with graceful shutdown and
// environment-driven configuration.
//
// Run blocks until the context is cancelled, an interrupt or termination
// signal arrives, or the listener fails; shutdown drains in-flight requests
// within the configured timeout.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		// Handle error
//	}
package httpserver
