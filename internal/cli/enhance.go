package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/HartBrook/burnish/internal/config"
	"github.com/HartBrook/burnish/internal/enhance"
	"github.com/HartBrook/burnish/internal/errors"
)

type enhanceOptions struct {
	tokenLimit  int
	input       string
	output      string
	targetModel string
	dryRun      bool
	compare     bool
	verbose     bool
	apiKey      string
}

// NewEnhanceCmd creates the enhance command.
func NewEnhanceCmd() *cobra.Command {
	opts := &enhanceOptions{}

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Enhance a prompt within a token limit",
		Long: `Enhance a prompt using Claude and keep the result under a token limit.

The prompt is sent to Claude with expert prompt-engineering instructions
covering structure, output specifications, context, examples, constraints,
role framing, reasoning guidance, and ambiguity elimination. If the
enhanced prompt comes back over the limit, a single compression pass runs
before giving up.

Prompts are read from --input or stdin. A 5% safety margin inside the
instructions keeps the result clear of the hard limit.`,
		Example: `  burnish enhance -t 2000                        # Read prompt from stdin
  burnish enhance -t 1500 -i prompt.txt          # Read from file
  burnish enhance -t 1000 -i in.txt -o out.txt   # Save enhanced prompt
  burnish enhance -t 800 -m haiku-3.5            # Target a lighter tier
  burnish enhance -t 2000 --dry-run              # Budget check, no API calls
  burnish enhance -t 2000 -i prompt.txt --compare`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.tokenLimit, "token-limit", "t", 0, "Maximum tokens for the enhanced prompt (minimum 50)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read the prompt from a file instead of stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the enhanced prompt to a file")
	cmd.Flags().StringVarP(&opts.targetModel, "target-model", "m", enhance.DefaultTargetModel, "Model tier the enhanced prompt is written for")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the token budget without calling the API")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "Show original and enhanced prompts side by side")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show detailed progress")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Anthropic API key (overrides environment)")
	_ = cmd.MarkFlagRequired("token-limit")

	return cmd
}

func runEnhance(ctx context.Context, opts *enhanceOptions) error {
	// Pick up credentials from a local .env before anything reads the
	// environment.
	if err := config.LoadDotEnv(".env"); err != nil {
		printWarning("Skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if logFile, err := config.SetupLogging(cfg.LogFile); err != nil {
		printWarning("Could not open log file %s: %v", cfg.LogFile, err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
	}

	// Fail fast on configuration before touching stdin
	if opts.tokenLimit < enhance.MinTokenLimit {
		return errors.TokenLimitTooLow(opts.tokenLimit, enhance.MinTokenLimit)
	}
	targetSpec, err := enhance.ResolveModel(opts.targetModel)
	if err != nil {
		return err
	}

	enhancementTier := cfg.Model
	if enhancementTier == "" {
		enhancementTier = enhance.DefaultEnhancementModel
	}
	enhancementSpec, err := enhance.ResolveModel(enhancementTier)
	if err != nil {
		return err
	}

	text, err := readPrompt(opts.input)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.InvalidInput()
	}

	estimator := enhance.NewEstimator()
	log.Printf("enhance run: limit=%d target=%s input_tokens=%d", opts.tokenLimit, targetSpec.Tier, estimator.Count(text))

	if opts.dryRun {
		displayDryRun(estimator, text, opts, targetSpec, enhancementSpec)
		return nil
	}

	apiKey, err := config.ResolveAPIKey(opts.apiKey)
	if err != nil {
		fmt.Println(dim("Anthropic API key not found."))
		fmt.Println()
		fmt.Println("Set your API key using one of these methods:")
		fmt.Println()
		fmt.Println("  1. Environment variable: " + info("export ANTHROPIC_API_KEY=<your-key>"))
		fmt.Println("  2. A .env file:          " + info("ANTHROPIC_API_KEY=<your-key>"))
		fmt.Println("  3. Command line:         " + info("--api-key <your-key>"))
		return err
	}

	if opts.verbose {
		fmt.Println("Enhancing prompt...")
		fmt.Printf("  %s: %d tokens\n", dim("Original"), estimator.Count(text))
		fmt.Printf("  %s: %s\n", dim("Enhancement model"), enhancementSpec.ID)
	}

	enhancer := enhance.NewEnhancer(estimator)
	result, err := enhancer.Enhance(ctx, text, enhance.Options{
		TokenLimit:  opts.tokenLimit,
		TargetModel: targetSpec.Tier,
		Model:       enhancementSpec.ID,
		APIKey:      apiKey,
	})
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("enhancement instruction:\n%s", result.EnhancementInstruction)
		if result.CompressionInstruction != "" {
			log.Printf("compression instruction:\n%s", result.CompressionInstruction)
		}
	}

	displayResult(result)

	if opts.compare {
		displayComparison(result)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(result.EnhancedText), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Println()
		printSuccess("Enhanced prompt saved to %s", opts.output)
	}

	return nil
}

// readPrompt reads the prompt text from a file, or from stdin when no
// file is given. On an interactive terminal a short banner explains how
// to end input.
func readPrompt(input string) (string, error) {
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", errors.Wrap(errors.ErrInvalidInput, "failed to read input file", "", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Enter your prompt (press Ctrl+D when done):")
		fmt.Println(dim(strings.Repeat("─", 50)))
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(errors.ErrInvalidInput, "failed to read stdin", "", err)
	}
	return strings.TrimSpace(string(data)), nil
}

type budgetLevel int

const (
	budgetAmple budgetLevel = iota
	budgetTight
	budgetExceeded
)

// budgetStatus classifies how much room the limit leaves on top of the
// original prompt. Enhancement grows a prompt, so a budget under half
// the original size rarely allows more than touch-ups.
func budgetStatus(tokens, budget int) budgetLevel {
	if budget < 0 {
		return budgetExceeded
	}
	if float64(budget) < float64(tokens)*0.5 {
		return budgetTight
	}
	return budgetAmple
}

// displayDryRun reports the token budget without making any API calls.
func displayDryRun(estimator *enhance.Estimator, text string, opts *enhanceOptions, target, enhancement enhance.ModelSpec) {
	tokens := estimator.Count(text)
	budget := opts.tokenLimit - tokens

	fmt.Println()
	fmt.Println(warning("Dry run - no API calls will be made"))
	fmt.Println()
	fmt.Printf("  %s: %d tokens\n", dim("Input"), tokens)
	fmt.Printf("  %s: %d tokens\n", dim("Token limit"), opts.tokenLimit)
	fmt.Printf("  %s: %s (%s)\n", dim("Target model"), enhance.DisplayName(target.Tier), target.ID)
	fmt.Printf("  %s: %s\n", dim("Enhancement with"), enhancement.ID)
	if opts.output != "" {
		fmt.Printf("  %s: %s\n", dim("Output file"), opts.output)
	}

	fmt.Println()
	fmt.Printf("  %s: %d tokens\n", dim("Available for enhancement"), budget)

	switch budgetStatus(tokens, budget) {
	case budgetExceeded:
		printError("Original prompt already exceeds the token limit")
	case budgetTight:
		printWarning("Tight budget - minimal enhancements possible")
	default:
		printSuccess("Sufficient budget for comprehensive enhancement")
	}

	fmt.Println()
	fmt.Println(dim("Dry run complete. Run again without --dry-run to enhance."))
}

// displayResult shows the enhancement outcome and the enhanced prompt.
func displayResult(result *enhance.Result) {
	fmt.Println()
	fmt.Printf("  %s: %d tokens\n", dim("Original"), result.Stats.Original)
	fmt.Printf("  %s: %d tokens\n", dim("Enhanced"), result.Stats.Enhanced)
	fmt.Printf("  %s: %d tokens\n", dim("Token limit"), result.Stats.Limit)
	fmt.Printf("  %s: %.2fx\n", dim("Growth"), result.Stats.Ratio())

	if result.Stats.WithinLimit() {
		printSuccess("Within limit (%d tokens of headroom)", result.Stats.Headroom())
	} else {
		printError("Exceeds limit by %d tokens", -result.Stats.Headroom())
	}
	if result.Compressed {
		fmt.Printf("  %s\n", dim("(compressed to fit)"))
	}

	fmt.Println()
	fmt.Printf("  %s: %d in / %d out\n", dim("API usage"), result.Usage.InputTokens, result.Usage.OutputTokens)
	fmt.Printf("  %s: %s\n", dim("Enhancement model"), result.Model)
	fmt.Printf("  %s: %s\n", dim("Target model"), enhance.DisplayName(result.TargetModel))

	fmt.Println()
	fmt.Println(info("Enhanced prompt:"))
	fmt.Println()
	fmt.Println(result.EnhancedText)
}

// displayComparison shows the original and enhanced prompts in full.
func displayComparison(result *enhance.Result) {
	fmt.Println()
	fmt.Println(danger("--- original"))
	fmt.Println(result.OriginalText)
	fmt.Println()
	fmt.Println(success("+++ enhanced"))
	fmt.Println(result.EnhancedText)
}
