// Package console is the boundary to the console capture collaborator. The
// crew emits human-readable progress lines through a Sink; the bundled
// Window implementation strips terminal escape sequences and keeps a
// bounded window of recent lines suitable for display in a host UI.
package console
