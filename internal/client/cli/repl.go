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
	List(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Upload(ctx context.Context, paths []string) error
	Delete(ctx context.Context) error
	Describe(ctx context.Context) error
	Visibility(ctx context.Context) error
	Link(ctx context.Context) error
	URL(ctx context.Context) error
	Gallery(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the filedeck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//   - help: show available commands
//   - list | l: show the current file list
//   - more: load the next page
//   - refresh: re-fetch the first page, replacing the list
//   - upload <paths...>: upload one or more local files
//   - delete: delete files (interactive id prompt + confirmation)
//   - describe: set a file's description
//   - visibility: change visibility for one or more files
//   - link: attach a file to an external entity
//   - url: resolve a download URL
//   - gallery [width]: print the justified gallery plan
//   - exit | quit: leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fd %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, more, refresh, upload <paths...>, delete, describe, visibility, link, url, gallery [width], exit")

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "delete":
			_ = a.Delete(ctx)

		case "describe":
			_ = a.Describe(ctx)

		case "visibility":
			_ = a.Visibility(ctx)

		case "link":
			_ = a.Link(ctx)

		case "url":
			_ = a.URL(ctx)

		case "gallery":
			_ = a.Gallery(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
