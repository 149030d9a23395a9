// Package cli wires together the Cobra command for the mr-comment binary.
//
// The tool has a single root command and no subcommands: flags select the
// diff source (working tree, commit, range, or file), the provider, and the
// output destination. Run returns deterministic exit codes: 0 success,
// 2 usage error, 3 configuration or credential error, 4 runtime error.
package cli
