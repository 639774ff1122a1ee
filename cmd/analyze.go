// This file implements the analyze command, which runs a full review panel
// over a subject file and prints the panel's results.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adalundhe/boardroom/core/config"
	"github.com/adalundhe/boardroom/core/llm"
	"github.com/adalundhe/boardroom/core/orchestrator"
	"github.com/adalundhe/boardroom/core/providers"
	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
	"github.com/adalundhe/boardroom/core/runner"
	"github.com/adalundhe/boardroom/core/store"
)

var (
	analyzeRoles        []string
	analyzeModel        string
	analyzeInstructions string
	analyzeTimeout      time.Duration
	analyzeJSON         bool
	analyzeNoStore      bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <subject-file>",
	Short: "Run the review panel over a subject",
	Long: `Run the review panel over a subject described in a JSON or YAML file.

Each enabled seat analyzes the subject in turn; the integration seat then
synthesizes every successful result into one report. Results are persisted
per subject and seat.

Examples:
  boardroom analyze project.yaml
  boardroom analyze project.json --roles technical,financial,integration
  boardroom analyze project.yaml --model claude-sonnet-4-5-20250901 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeRoles, "roles", nil, "comma-separated seats to run (default: full panel)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "model for every seat (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeInstructions, "instructions", "", "extra instructions passed to every seat")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 0, "overall run deadline (0 = none)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit results as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoStore, "no-store", false, "skip persisting results")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	subject, err := loadSubject(args[0])
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	var gateway store.Gateway
	if !analyzeNoStore {
		gateway, err = openGateway(cfg)
		if err != nil {
			return err
		}
	}

	orchCfg := orchestrator.Config{
		Roles:        cfg.PanelRoles(),
		Model:        cfg.Panel.Model,
		Models:       cfg.PanelModels(),
		MaxTokens:    cfg.Panel.MaxTokens,
		Instructions: analyzeInstructions,
		Timeout:      cfg.Panel.Timeout.Duration(),
		Progress: func(message string) {
			fmt.Fprintln(os.Stderr, message)
		},
	}
	if len(analyzeRoles) > 0 {
		orchCfg.Roles, err = parseRoles(analyzeRoles)
		if err != nil {
			return err
		}
	}
	if analyzeModel != "" {
		orchCfg.Model = analyzeModel
	}
	if analyzeTimeout > 0 {
		orchCfg.Timeout = analyzeTimeout
	}

	caller := llm.NewCaller(registry, llm.Config{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay.Duration(),
		Progress:   llm.ProgressFunc(orchCfg.Progress),
	})
	seatRunner := runner.New(caller, runner.Config{})

	orch, err := orchestrator.New(seatRunner, gateway, orchCfg)
	if err != nil {
		return err
	}

	run, err := orch.Run(context.Background(), subject)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return printJSON(cmd, run.Results())
	}
	printRun(cmd, run)
	return nil
}

// loadSubject reads a subject from a JSON or YAML file.
func loadSubject(path string) (*review.Subject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subject: %w", err)
	}

	var subject review.Subject
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, &subject)
	} else {
		err = yaml.Unmarshal(data, &subject)
	}
	if err != nil {
		return nil, fmt.Errorf("parse subject: %w", err)
	}

	if err := subject.Validate(); err != nil {
		return nil, err
	}
	return &subject, nil
}

// buildRegistry registers every provider with a configured API key.
func buildRegistry(cfg config.Config) (*providers.Registry, error) {
	registry := providers.NewRegistry()
	registered := 0

	if cfg.Providers.Anthropic.APIKey != "" {
		p, err := providers.NewAnthropicProvider(anthropicConfig(cfg.Providers.Anthropic))
		if err != nil {
			return nil, err
		}
		if err := registry.Register(p); err != nil {
			return nil, err
		}
		registered++
	}

	if cfg.Providers.OpenAI.APIKey != "" {
		p, err := providers.NewOpenAIProvider(openaiConfig(cfg.Providers.OpenAI))
		if err != nil {
			return nil, err
		}
		if err := registry.Register(p); err != nil {
			return nil, err
		}
		registered++
	}

	if registered == 0 {
		return nil, fmt.Errorf("no provider configured: set an API key in %s or via ANTHROPIC_API_KEY / OPENAI_API_KEY", configPath)
	}
	return registry, nil
}

func anthropicConfig(pc config.ProviderConfig) providers.AnthropicConfig {
	cfg := providers.DefaultAnthropicConfig()
	cfg.APIKey = pc.APIKey
	if pc.Model != "" {
		cfg.Model = pc.Model
	}
	if pc.MaxTokens > 0 {
		cfg.MaxTokens = pc.MaxTokens
	}
	if pc.Timeout.Duration() > 0 {
		cfg.Timeout = pc.Timeout.Duration()
	}
	cfg.BaseURL = pc.BaseURL
	return cfg
}

func openaiConfig(pc config.ProviderConfig) providers.OpenAIConfig {
	cfg := providers.DefaultOpenAIConfig()
	cfg.APIKey = pc.APIKey
	if pc.Model != "" {
		cfg.Model = pc.Model
	}
	if pc.MaxTokens > 0 {
		cfg.MaxTokens = pc.MaxTokens
	}
	if pc.Timeout.Duration() > 0 {
		cfg.Timeout = pc.Timeout.Duration()
	}
	cfg.BaseURL = pc.BaseURL
	return cfg
}

// openGateway opens the configured result store behind the LRU cache.
func openGateway(cfg config.Config) (store.Gateway, error) {
	sqlite, err := store.OpenSQLiteStore(cfg.Store.Path, store.DefaultSQLiteConfig())
	if err != nil {
		return nil, err
	}
	return store.NewCachedGateway(sqlite, cfg.Store.CacheSize)
}

func parseRoles(names []string) ([]roles.Role, error) {
	out := make([]roles.Role, 0, len(names))
	for _, name := range names {
		role, err := roles.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, nil
}

func printRun(cmd *cobra.Command, run *review.Run) {
	summary := run.Summarize()
	cmd.Printf("run %s (%s): %d seats, %d succeeded, %d failed\n\n",
		run.ID, summary.Outcome(), summary.Total, summary.Succeeded, summary.Failed)

	for _, res := range run.Results() {
		if res.Error {
			cmd.Printf("== %s: FAILED (%s)\n%s\n\n", res.Role.DisplayName(), res.FailureKind, res.Analysis)
			continue
		}
		cmd.Printf("== %s: %d/10\n%s\n\n", res.Role.DisplayName(), res.Score, res.Analysis)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
