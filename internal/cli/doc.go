// Package cli builds the vocab command tree. The root command runs the
// interactive view; subcommands print the same pages once and exit.
package cli
