// Package session persists the authenticated identity across invocations.
//
// [Store] is a sqlite-backed key/value table holding the literal keys
// userId, role and email, the same field names the service returns. The
// absence of userId is the sole unauthenticated signal; role and email are
// then treated as absent whatever the table contains.
//
// Change propagation has two channels. Mutations made through this process
// notify subscribers synchronously from Save and Clear, so observers never
// poll for changes they themselves caused. Mutations made by another
// process sharing the store file are picked up by [Store.Watch], which
// re-reads the store on an interval and fires the same subscribers when
// the identity actually changed.
package session
