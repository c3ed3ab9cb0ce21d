// Package cli is the interactive shell of the Vyapkart client. It wires the
// identity bridge, the backend API client and the local session store
// together, restores a persisted session at startup, and dispatches REPL
// commands to the application services.
package cli
