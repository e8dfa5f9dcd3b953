package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. App satisfies it;
// tests substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Discover(ctx context.Context) error
	Likes(ctx context.Context) error
	Matches(ctx context.Context) error
	Chat(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line, dispatches the first token as a command, and loops
// until EOF or "exit"/"quit". Handler errors are not surfaced here; handlers
// print their own messages so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cc (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: discover, likes, matches, chat, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "discover":
			if !requireLogin(a) {
				continue
			}
			_ = a.Discover(ctx)

		case "likes":
			if !requireLogin(a) {
				continue
			}
			_ = a.Likes(ctx)

		case "m", "matches":
			if !requireLogin(a) {
				continue
			}
			_ = a.Matches(ctx)

		case "chat":
			if !requireLogin(a) {
				continue
			}
			_ = a.Chat(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}
