// Package screenboard is a client for datadog's screenboard API: create,
// update, delete and fetch boards, and mint public sharing urls.
//
// Both the application key and the api key are obtained from the datadog
// site and travel as query parameters on every request. Each operation is a
// single blocking round-trip; there is no retry or caching layer. A Client
// is safe to share across goroutines as long as the base url and transport
// are not mutated while operations are in flight.
package screenboard
