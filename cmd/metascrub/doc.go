// Package metascrub provides the command-line interface for the metascrub
// tool. It configures subcommands (run, patterns, history), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/metascrub/metascrub/cmd/metascrub"
//	func main() { metascrub.Execute() }
package metascrub
