package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/RobertKozak/mr-comment/internal/config"
	"github.com/RobertKozak/mr-comment/internal/diff"
	"github.com/RobertKozak/mr-comment/internal/gitctx"
	"github.com/RobertKozak/mr-comment/internal/output"
	"github.com/RobertKozak/mr-comment/internal/prompt"
	"github.com/RobertKozak/mr-comment/internal/providers"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const version = "1.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitRuntimeError = 4
)

var (
	flagCommit   string
	flagFile     string
	flagOutput   string
	flagAPIKey   string
	flagProvider string
	flagEndpoint string
	flagModel    string
	flagMaxLines int
	flagDebug    bool
	flagPlain    bool
	flagSave     bool
)

var rootCmd = &cobra.Command{
	Use:     "mr-comment",
	Short:   "Generate GitLab MR comments from git diffs using AI",
	Version: version,
	Long: `Generate professional GitLab MR comments from git diffs using AI

Examples:
  # Generate comment using Claude (default)
  mr-comment --api-key YOUR_API_KEY

  # Generate comment using OpenAI
  mr-comment --provider openai --api-key YOUR_OPENAI_KEY

  # Generate comment for a specific commit
  mr-comment --commit a1b2c3d

  # Generate comment for a range of commits
  mr-comment --commit "HEAD~3..HEAD"

  # Read diff from file
  mr-comment --file path/to/diff.txt

  # Write output to file
  mr-comment --output mr-comment.md

  # Use a different model
  mr-comment --provider claude --model claude-3-haiku-20240307`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagMaxLines < 2 {
			return fmt.Errorf("--max-lines must be at least 2, got %d", flagMaxLines)
		}
		runGenerate()
		return nil
	},
}

// exitCode is set by the run pipeline to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

func init() {
	rootCmd.Flags().StringVarP(&flagCommit, "commit", "c", "", `Commit or range to generate comment for (e.g. "HEAD" or "HEAD~3..HEAD")`)
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read diff from file instead of git command")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.Flags().StringVarP(&flagAPIKey, "api-key", "k", "", "API key (can also use OPENAI_API_KEY or ANTHROPIC_API_KEY env var)")
	rootCmd.Flags().StringVarP(&flagProvider, "provider", "p", "", "API provider to use (openai, claude)")
	rootCmd.Flags().StringVarP(&flagEndpoint, "endpoint", "e", "", "API endpoint (defaults based on provider)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model to use (defaults based on provider)")
	rootCmd.Flags().IntVar(&flagMaxLines, "max-lines", diff.DefaultMaxLines, "Maximum diff lines sent to the model (head and tail are kept)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug mode - estimate token usage and exit")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the comment without decorative framing")
	rootCmd.Flags().BoolVar(&flagSave, "save-config", false, "Persist the resolved provider settings to the config file")
	rootCmd.MarkFlagsMutuallyExclusive("commit", "file")
}

// runGenerate drives the pipeline: acquire diff, normalize, truncate, build
// prompt, call the provider, write the result. Failures set exitCode and
// never emit partial output.
func runGenerate() {
	fileCfg, err := config.Load()
	if err != nil {
		fail(err, ExitConfigError)
		return
	}

	resolved, err := config.Resolve(config.Flags{
		Provider: flagProvider,
		APIKey:   flagAPIKey,
		Endpoint: flagEndpoint,
		Model:    flagModel,
	}, os.Getenv, fileCfg)
	if err != nil {
		fail(err, ExitConfigError)
		return
	}

	if flagSave {
		if err := config.Save(fileCfg.Apply(resolved)); err != nil {
			fail(err, ExitRuntimeError)
			return
		}
		fmt.Fprintln(os.Stderr, "Configuration saved")
	}

	raw, err := acquireDiff()
	if err != nil {
		fail(err, ExitRuntimeError)
		return
	}

	normalized, err := diff.Normalize(raw)
	if err != nil {
		fail(err, ExitRuntimeError)
		return
	}

	truncated, originalLines := diff.Truncate(normalized, flagMaxLines)

	if flagDebug {
		printDebug(os.Stdout, raw, truncated, originalLines)
		return
	}

	gen, err := providers.New(resolved)
	if err != nil {
		fail(err, ExitConfigError)
		return
	}

	req := providers.Request{
		System: prompt.System(),
		User:   prompt.UserMessage(truncated, originalLines, flagMaxLines),
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Generating MR comment..."
	s.Start()
	resp, err := gen.Generate(context.Background(), req)
	s.Stop()

	if err != nil {
		fail(err, exitCodeFor(err))
		return
	}

	if err := output.WriteResult(resp.Content, flagOutput, flagPlain); err != nil {
		fail(err, ExitRuntimeError)
	}
}

func acquireDiff() (string, error) {
	if flagFile != "" {
		return gitctx.FromFile(flagFile)
	}
	return gitctx.Diff(flagCommit)
}

// exitCodeFor maps a generation failure to an exit code: rejected
// credentials are a configuration problem, everything else is runtime.
func exitCodeFor(err error) int {
	var re *providers.RequestError
	if errors.As(err, &re) && (re.StatusCode == 401 || re.StatusCode == 403) {
		return ExitConfigError
	}
	return ExitRuntimeError
}

func fail(err error, code int) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = code
}

func printDebug(w io.Writer, raw, truncated string, originalLines int) {
	systemTokens := diff.EstimateTokens(prompt.System())
	diffTokens := diff.EstimateTokens(truncated)

	fmt.Fprintln(w, "Token estimation:")
	fmt.Fprintf(w, "- System prompt: %d tokens\n", systemTokens)
	fmt.Fprintf(w, "- Diff content: %d tokens (%d lines)\n", diffTokens, originalLines)
	fmt.Fprintf(w, "- Total estimate: %d tokens\n", systemTokens+diffTokens)

	// Best effort: an unparsable diff just skips the file breakdown.
	if stats, err := diff.Stat(raw); err == nil && stats.TotalFiles() > 0 {
		fmt.Fprintf(w, "Files changed: %d (%d modified, %d added, %d deleted, %d binary), %d hunks\n",
			stats.TotalFiles(), stats.FilesModified, stats.FilesAdded,
			stats.FilesDeleted, stats.FilesBinary, stats.Hunks)
	}
}
