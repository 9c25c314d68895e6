// Package views renders entities and aggregates as terminal text using
// lipgloss. Every function is pure: it formats already-fetched data and
// never talks to the API.
package views
