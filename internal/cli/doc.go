// Package cli implements the interactive authkeeper console: a REPL over
// the session manager with commands for signup, login, logout and session
// inspection.
package cli
