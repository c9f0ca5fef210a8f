package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isSignedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Category(ctx context.Context, path string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context, id string) error
	Cart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Publish(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit". Command handlers report their own
// errors; the loop only keeps reading.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: (l)ist, search <text>, category <name>, show <id>, add <id>, cart, checkout, publish, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search <text>, category <name>, show <id>, add <id>, cart, checkout, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "category":
			_ = a.Category(ctx, arg)

		case "show":
			_ = a.Show(ctx, arg)

		case "add":
			_ = a.Add(ctx, arg)

		case "cart":
			_ = a.Cart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
