// Package cli defines the prism command surface. Commands are thin: they
// parse flags and arguments, then call into the core packages through the
// app wiring.
package cli
