// Package gitctx acquires raw diff text, either by shelling out to git or
// by reading a diff from a file.
//
// [Diff] maps a commit argument to the right git invocation: empty means
// working tree changes, a range ("..") or HEAD is passed through, and a
// single commit is diffed against its parent. [FromFile] reads a
// pre-produced diff. Both reject non-UTF8 content.
package gitctx
