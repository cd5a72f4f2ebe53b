// Package cart keeps a local snapshot of the server-side cart.
//
// The server is authoritative: every mutation is sent first and followed by a
// full re-fetch, so the snapshot never holds a locally patched state. The one
// exception is ClearCart, which empties the snapshot before the request goes
// out and keeps it empty even if the request fails.
//
// A Synchronizer follows the session it is built with. A logout clears the
// snapshot, a login triggers a fetch, and while nobody is signed in every
// mutator fails with common.ErrNotAuthenticated without touching the network.
package cart
