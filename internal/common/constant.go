// Package common contains shared constants and sentinel errors used across
// storefront client components.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the raw token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName correlates a client request with server logs.
const RequestIDHeaderName = "X-Request-ID"
