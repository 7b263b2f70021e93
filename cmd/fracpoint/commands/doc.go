// Package commands defines the fracpoint CLI and wires dependencies for subcommands.
//
// Commands
//
//   - demo           Print the fraction and point walkthrough
//   - frac <op>      add, sub, mul, div or cmp two fractions "N1 D1 N2 D2"
//   - point <op>     add, dot or mid two points "X1 Y1 X2 Y2"
//
// Operands are read from the remaining arguments, or from stdin when none are
// given. Negative operands on the command line must follow "--" so they are not
// taken for flags:
//
//	fracpoint frac add -- -1 2 3 4
//	echo "-1 2 3 4" | fracpoint frac add
//
// # Implementation
//
// The root command builds an app.App (streams and logger) before any
// subcommand runs, so handlers share one logger configured by --log-level.
package commands
