package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Navigate(path string)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Products(ctx context.Context, args []string) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	SetQuantity(ctx context.Context, args []string) error
	RemoveLine(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error

	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context, args []string) error
	CancelOrder(ctx context.Context, args []string) error

	Admin(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: products <category> [page], login, register, exit"
	helpUser  = "Available commands: products <category> [page], cart, add <product> [qty] [size] [color], qty <line> <n>, remove <line>, clear, checkout, orders, order <id>, cancel <id>, logout, exit"
	helpAdmin = "Admin: admin accounts | activate <id> | deactivate <id> | delete-account <id> | orders | status <id> <status> | products | save-product | delete-product <id>"
)

// protected lists commands that need a live session, like the protected
// routes of the web shop.
var protected = map[string]bool{
	"cart": true, "add": true, "qty": true, "remove": true, "clear": true,
	"checkout": true, "orders": true, "order": true, "cancel": true, "admin": true,
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Protected commands are refused while signed
// out and send the user to the login location; admin commands are refused for
// non-administrators. The loop exits on EOF, when ctx is done, or when the user
// types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("shop %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in to continue")
			a.Navigate(session.LoginPath)
			continue
		}
		if cmd == "admin" && !a.isAdmin() {
			printlnFn("Access denied: administrators only")
			a.Navigate(session.HomePath)
			continue
		}

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpGuest)
			}

		case "home":
			a.Navigate(session.HomePath)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "products":
			_ = a.Products(ctx, args)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "qty":
			_ = a.SetQuantity(ctx, args)

		case "remove":
			_ = a.RemoveLine(ctx, args)

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "order":
			_ = a.ShowOrder(ctx, args)

		case "cancel":
			_ = a.CancelOrder(ctx, args)

		case "admin":
			_ = a.Admin(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
