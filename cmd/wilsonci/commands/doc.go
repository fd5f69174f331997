// Package commands defines the wilsonci CLI and wires dependencies for subcommands.
//
// Commands
//
//   - wilsonci <Label=k/n>...   Print a Wilson interval table for the items
//   - wilsonci -                Read items from stdin, one per line
//   - quantile <p>...           Print standard normal quantiles
//
// # Implementation
//
// The root command resolves defaults from the environment (internal/config)
// and builds a zerolog console logger before any subcommand runs. Flags that
// were set explicitly override the environment.
//
// Usage errors are returned as *ExitError with Code 2; any other error
// should end the process with status 1.
package commands
