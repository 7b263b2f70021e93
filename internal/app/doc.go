// Package app wires runtime dependencies for the CLI.
//
// It builds the logger and the input/output streams from Config, exposing
// them via the App struct for commands to use.
package app
