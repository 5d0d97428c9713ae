// Package api implements the catalogue/publication gateway to the cinema
// listing service.
//
// [Client] is a thin request/response mapper: one method per remote
// resource, no retry, no caching. Every non-success transport outcome is
// normalized into a [*TransportError] carrying the response status and the
// body text (or "HTTP {status}" when the body is empty), so callers deal
// with a single error kind at the boundary. A 204 response from a create
// operation resolves to id 0 with a nil error: an explicit empty result,
// distinct from a failure.
//
// [Gateway] abstracts the client for the workflow and UI layers and for
// test doubles.
package api
