// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the application services, and the background
// storage purge job into a single process lifecycle.
package client
