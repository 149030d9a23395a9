// Package output writes the generated MR comment to its destination.
//
// Stdout gets a styled heading and a rounded border around the comment
// unless plain mode is requested. A file destination is overwritten
// unconditionally and never framed, so the result stays paste-ready.
package output
