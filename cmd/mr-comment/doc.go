// Mr-comment generates merge-request descriptions from git diffs using an
// LLM provider.
//
// It gathers a diff from the working tree, a commit, a revision range, or a
// file, strips binary noise and added/deleted file bodies, bounds the result
// to a line budget, and sends it with a fixed instruction prompt to OpenAI or
// Claude. The generated comment is printed to stdout or written to a file.
//
// Usage:
//
//	mr-comment                            # working tree changes, Claude
//	mr-comment -p openai -k KEY           # working tree changes, OpenAI
//	mr-comment -c a1b2c3d                 # a single commit vs its parent
//	mr-comment -c "HEAD~3..HEAD"          # a revision range
//	mr-comment -f changes.diff -o out.md  # diff from file, output to file
//	mr-comment --debug                    # estimate token usage and exit
//
// Configuration is resolved from flags, environment variables
// (OPENAI_API_KEY, ANTHROPIC_API_KEY), and ~/.mr-comment, in that order.
package main
