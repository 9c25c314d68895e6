// Package cli provides the interactive qradmin console.
//
// It wires the session store, the API client and one list controller per
// resource family into a REPL. The prompt shows the signed-in admin and the
// current route; typing a route path (or "go <path>") navigates, and the
// resource screens accept search, filter, paging, edit, delete and view
// commands. A session that expires mid-command sends the user back to
// /login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
