// Package diff prepares raw git diffs for use in an LLM prompt.
//
// [Normalize] strips binary-file notices, elides the bodies of added and
// deleted files into a path summary, and keeps modified-file sections
// verbatim. [Truncate] bounds the result to a line budget, keeping the head
// and tail of the diff. [EstimateTokens] and [Stat] feed the --debug
// diagnostic mode.
//
// All operations are pure: they take strings, perform no I/O, and allocate
// no resources.
package diff
