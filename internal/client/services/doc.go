// Package services contains application services for the storefront client.
// Each service combines the REST client with the session and cart state:
// authentication, catalog browsing, checkout and order history, and the
// back-office operations reserved for administrators.
package services
