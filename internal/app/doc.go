// Package app wires the core subsystems together: workspace path
// resolution, logger construction, and the shared handles the command
// layer operates through.
package app
