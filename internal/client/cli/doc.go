// Package cli provides the interactive storefront command-line client.
//
// It is the UI layer over the session, cart and services packages: a REPL
// that reads commands, prints results, and keeps a navigation location the
// way a browser would. The location is what the session manager consults when
// it ends a session, so a user sitting on /cart is sent to /login while one on
// the home page stays where they are.
//
// Key features:
//   - Login / Register / Logout
//   - Browse products by category
//   - Cart: show, add, change quantity, remove, clear
//   - Checkout and order history
//   - Back office for administrators (accounts, orders, products)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
