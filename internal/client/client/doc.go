// Package client contains client-side building blocks for the storefront.
//
// # Overview
//
// The package provides:
//  1. The remote API contract (see the Client interface): accounts, cart,
//     catalog, orders and the back-office endpoints.
//  2. A concrete REST implementation (see HTTPClient) that attaches the bearer
//     token supplied by an Authenticator, retries idempotent reads, trips a
//     circuit breaker when the backend keeps failing, and maps HTTP statuses
//     to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrBadRequest, ErrNotFound,
// ErrServer, and common.ErrForbidden. Responses carrying a server message are
// returned as *APIError. UserMessage renders any of them for display.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
