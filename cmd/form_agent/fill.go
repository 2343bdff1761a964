package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/form-autofill/internal/browser"
	"github.com/jonathan/form-autofill/internal/config"
	"github.com/jonathan/form-autofill/internal/forms"
	"github.com/jonathan/form-autofill/internal/llm"
	"github.com/jonathan/form-autofill/internal/observability"
	"github.com/jonathan/form-autofill/internal/profile"
	"github.com/jonathan/form-autofill/internal/resume"
)

var fillCommand = &cobra.Command{
	Use:   "fill",
	Short: "Fill the form on a page from a profile and resume",
	Long: `Navigates to a page, discovers the form controls, and fills each one:
known-data profile matches first, LLM-generated answers grounded in the
resume for the rest.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runFillCmd,
}

var (
	fillConfigPath     string
	fillURL            string
	fillFormSelector   string
	fillProfile        string
	fillResume         string
	fillThreshold      int
	fillProvider       string
	fillModel          string
	fillAPIKey         string
	fillOllamaEndpoint string
	fillBrowserTimeout int
	fillHeaded         bool
	fillDryRun         bool
	fillVerbose        bool
)

func init() {
	// Config file flag (processed first)
	fillCommand.Flags().StringVar(&fillConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	fillCommand.Flags().StringVarP(&fillURL, "url", "u", "", "URL of the page with the form to fill")
	fillCommand.Flags().StringVar(&fillFormSelector, "form", "", "CSS selector scoping element discovery (default: first form on the page)")
	fillCommand.Flags().StringVarP(&fillProfile, "profile", "p", "", "Path to known-data profile JSON")
	fillCommand.Flags().StringVarP(&fillResume, "resume", "r", "", "Path to resume document (PDF or plain text)")
	fillCommand.Flags().IntVar(&fillThreshold, "threshold", 0, "Fuzzy match threshold 0-100 (default 80)")
	fillCommand.Flags().StringVar(&fillProvider, "provider", "", "LLM provider: gemini or ollama (default gemini)")
	fillCommand.Flags().StringVar(&fillModel, "model", "", "Model name override")
	fillCommand.Flags().StringVar(&fillOllamaEndpoint, "ollama-endpoint", "", "Ollama API endpoint for --provider ollama")
	fillCommand.Flags().IntVar(&fillBrowserTimeout, "browser-timeout", 0, "Per-action browser timeout in seconds")
	fillCommand.Flags().BoolVar(&fillHeaded, "headed", false, "Run the browser with a visible window")
	fillCommand.Flags().BoolVar(&fillDryRun, "dry-run", false, "Resolve values without touching the page")
	fillCommand.Flags().BoolVarP(&fillVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	fillCommand.Flags().StringVar(&fillAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(fillCommand)
}

func runFillCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if fillConfigPath != "" {
		loadedCfg, err := config.LoadConfig(fillConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if fillVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", fillConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("url") {
		cfg.URL = fillURL
	}
	if cmd.Flags().Changed("form") {
		cfg.FormSelector = fillFormSelector
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = fillProfile
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = fillResume
	}
	if cmd.Flags().Changed("threshold") {
		cfg.MatchThreshold = fillThreshold
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = fillProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = fillModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = fillAPIKey
	}
	if cmd.Flags().Changed("ollama-endpoint") {
		cfg.OllamaEndpoint = fillOllamaEndpoint
	}
	if cmd.Flags().Changed("browser-timeout") {
		cfg.BrowserTimeoutSeconds = fillBrowserTimeout
	}
	if cmd.Flags().Changed("headed") {
		cfg.Headed = fillHeaded
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = fillDryRun
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = fillVerbose
	}

	// Step 3: Validate merged configuration
	if cfg.URL == "" {
		return fmt.Errorf("a target URL is required (--url flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Construct the LLM client through the provider registry
	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// Step 5: Load known data and resume context
	known := forms.KnownData{}
	if cfg.Profile != "" {
		prof, err := profile.Load(cfg.Profile)
		if err != nil {
			return err
		}
		known = prof.Data
	}

	var resumeCtx *resume.Context
	resumePath := known.ResumePath()
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath != "" {
		resumeCtx, err = resume.Load(resumePath)
		if err != nil {
			return err
		}
	}

	// Step 6: Open the page and discover form controls
	session, err := browser.NewSession(ctx, browser.Options{
		Headless: !cfg.Headed,
		Timeout:  time.Duration(cfg.BrowserTimeoutSeconds) * time.Second,
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer session.Close()

	if err := session.Navigate(cfg.URL); err != nil {
		return err
	}

	elements, err := session.DiscoverElements(cfg.FormSelector)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		return fmt.Errorf("no fillable controls found on %s", cfg.URL)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintElements(elements)
	}

	// Step 7: Run the fill pass
	var actions forms.Actions = browser.NewDriver(session)
	if cfg.DryRun {
		actions = dryRunActions{}
	}

	gen := forms.NewGenerator(client, resumeCtx)
	eval := forms.NewEvaluator(forms.NewMatcher(cfg.Threshold()), gen)
	filler := forms.NewFiller(actions, eval, cfg.Threshold())

	results := filler.FillAll(ctx, elements, known)
	printer.PrintResults(results)

	return nil
}

// newLLMClient builds the provider config from CLI settings and resolves
// the client through the registry.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	provider := llm.Provider(cfg.Provider)

	var llmCfg *llm.Config
	switch provider {
	case llm.ProviderOllama:
		llmCfg = llm.DefaultOllamaConfig()
		if cfg.OllamaEndpoint != "" {
			llmCfg.Endpoint = cfg.OllamaEndpoint
		}
	case llm.ProviderGemini, "":
		llmCfg = llm.DefaultGeminiConfig()
	default:
		// Let the registry produce the canonical unknown-provider error.
		llmCfg = &llm.Config{Provider: provider}
	}

	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.Model)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return llm.NewClient(ctx, llmCfg, apiKey)
}

// dryRunActions satisfies forms.Actions without touching the page.
type dryRunActions struct{}

func (dryRunActions) SetValue(context.Context, string, string) error     { return nil }
func (dryRunActions) SelectOption(context.Context, string, string) error { return nil }
func (dryRunActions) Click(context.Context, string) error                { return nil }
func (dryRunActions) SetChecked(context.Context, string, bool) error     { return nil }
func (dryRunActions) Upload(context.Context, string, string) error       { return nil }
