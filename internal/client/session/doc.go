// Package session owns the client's authentication state: the bearer token,
// the identity it belongs to, and the background watch that ends the session
// once the token's exp claim has passed.
//
// A Manager is the single source of truth for "is the user signed in". Its
// state is mirrored to durable Storage so it survives a restart (see Restore)
// and every transition is broadcast to subscribers (see Subscribe), which is
// how the cart learns that it has to clear or reload itself.
//
// Token checks are advisory. The JWT payload is decoded without verifying the
// signature; the server stays the authority and signals rejection with 401,
// which reaches the Manager through Rejected.
package session
