// Package cli provides the interactive AutoFinance command-line client.
//
// It wires configuration, the persisted session, the backend API and an
// interactive REPL. The prompt plays the role of a page header and shows who
// is logged in; a route guard decides which view to open; the views (Login,
// Register, Dashboard) prompt for form input and print lists.
//
// Typical flow: restore the session from disk, open the dashboard if a user
// is remembered or the login form otherwise, then execute user commands
// until "exit". See App, Route, Header and runREPL.
package cli
