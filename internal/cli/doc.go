// Package cli defines the Cobra command tree for the appdemos CLI. Each file
// in this package registers one top-level command (list, show, generate,
// serve, etc.) with the root command. Command implementations delegate to
// internal packages for the work and only handle flags and output formatting.
package cli
