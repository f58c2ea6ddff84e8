// Package fanout provides the live-listener side of the broker: per-topic
// subscriber sets whose members each own a private, unbounded mailbox.
//
// Publishing copies the payload into every mailbox registered for the topic
// at the moment of delivery; subscribers registered afterwards do not
// receive it, and there is no shared offset between subscribers — each
// mailbox is an independent copy stream in publish order.
//
// Basic usage:
//
//	hub := fanout.NewHub()
//
//	sub := hub.Subscribe("alerts")
//	defer sub.Close()
//
//	go hub.Publish("alerts", []byte("disk full"))
//
//	payload, err := sub.Next(ctx)
//
// Close must run exactly once per subscription, including on abnormal
// disconnect; a subscription that is never closed leaks its mailbox for the
// life of the process.
package fanout
