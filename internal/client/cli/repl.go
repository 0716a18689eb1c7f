package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Add(ctx context.Context, ticker string) error
	Remove(ctx context.Context, ticker string) error
	WhoAmI(ctx context.Context) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                          show available commands
//	  - ping                          check the backend
//	  - exit | quit                   leave the program
//
//	Not logged in:
//	  - register                      create an account
//	  - login                         authenticate
//
//	Logged in:
//	  - dashboard | list | l          show subscriptions
//	  - add <ticker>                  subscribe to a ticker
//	  - remove | rm | unsubscribe <t> drop a subscription
//	  - whoami                        show the backend's view of the user
//	  - logout                        forget the session
//
// Errors returned by handlers are ignored here; handlers report them.
//
// Forms opened by a command read their answers from the same reader, so a
// pasted or piped block of commands and answers is consumed in order.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("%s > ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard (list, l), add <ticker>, remove <ticker>, whoami, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "dashboard", "list", "l":
			if requireSession(a) {
				_ = a.Dashboard(ctx)
			}

		case "add":
			if requireSession(a) && requireArg(cmd, args) {
				_ = a.Add(ctx, args[0])
			}

		case "remove", "rm", "unsubscribe":
			if requireSession(a) && requireArg(cmd, args) {
				_ = a.Remove(ctx, args[0])
			}

		case "whoami":
			if requireSession(a) {
				_ = a.WhoAmI(ctx)
			}

		case "logout":
			if requireSession(a) {
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireSession(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Not logged in. Use \"login\" or \"register\" first.")
	return false
}

func requireArg(cmd string, args []string) bool {
	if len(args) > 0 {
		return true
	}
	printlnFn(fmt.Sprintf("Usage: %s <ticker>", cmd))
	return false
}
