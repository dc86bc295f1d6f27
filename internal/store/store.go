// Package store provides journal persistence backends. Every backend
// satisfies the book.Store contract: Append adds one accepted entry,
// All returns a snapshot of the journal in storage order that never
// aliases internal state.
package store
