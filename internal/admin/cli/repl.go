package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Navigate(ctx context.Context, path string) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, key, value string) error
	Page(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Edit(ctx context.Context, row string) error
	Delete(ctx context.Context, row string) error
	View(ctx context.Context, row string) error
	Range(ctx context.Context, start, end string) error
}

const (
	helpAnonymous = "Available commands: login, exit"
	helpLoggedIn  = `Available commands:
  go <route> | <route>   navigate: / /users /qr-codes /landing-pages /analytics
  search [text]          search the current list (no text clears it)
  filter <key> [value]   set or clear a filter
  page <n>, next, prev   paginate
  edit <n>, delete <n>   edit or delete row n
  view <n>               QR analysis or landing page preview
  range [start] [end]    analytics date range, YYYY-MM-DD or -
  (r)efresh, whoami, logout, exit`
)

// arg returns parts[i] or "".
func arg(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// runREPL reads commands from reader until EOF, "exit" or "quit", and
// dispatches them to a. The prompt shows statusFn(). Command errors are
// reported by the handlers themselves and do not stop the loop.
//
// Prompts inside commands read the same reader, so it must not be wrapped
// in anything that buffers ahead.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("qradmin %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		if strings.HasPrefix(cmd, "/") {
			_ = a.Navigate(ctx, cmd)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please log in first (type 'login').")
				continue
			}
			dispatch(ctx, a, cmd, parts)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, parts []string) {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "go":
		if len(parts) < 2 {
			printlnFn("Usage: go <route>")
			return
		}
		_ = a.Navigate(ctx, parts[1])
	case "r", "refresh":
		_ = a.Refresh(ctx)
	case "search":
		_ = a.Search(ctx, strings.Join(parts[1:], " "))
	case "filter":
		_ = a.Filter(ctx, arg(parts, 1), arg(parts, 2))
	case "page":
		if len(parts) < 2 {
			printlnFn("Usage: page <n>")
			return
		}
		_ = a.Page(ctx, parts[1])
	case "next":
		_ = a.Next(ctx)
	case "prev":
		_ = a.Prev(ctx)
	case "edit", "delete", "view":
		if len(parts) < 2 {
			printlnFn(fmt.Sprintf("Usage: %s <row>", cmd))
			return
		}
		switch cmd {
		case "edit":
			_ = a.Edit(ctx, parts[1])
		case "delete":
			_ = a.Delete(ctx, parts[1])
		case "view":
			_ = a.View(ctx, parts[1])
		}
	case "range":
		_ = a.Range(ctx, arg(parts, 1), arg(parts, 2))
	default:
		printlnFn("Unknown command:", cmd)
	}
}
