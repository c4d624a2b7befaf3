package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/empath/internal/cache"
	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/engines"
	"github.com/dshills/empath/internal/output"
	"github.com/dshills/empath/internal/review"
)

var (
	flagEngine    string
	flagModel     string
	flagAPIKey    string
	flagFormat    string
	flagOut       string
	flagTables    string
	flagMaxTokens int
	flagNoRedact  bool
	flagNoCache   bool
)

var (
	statusInfo = color.New(color.FgHiBlue).SprintFunc()
	statusOK   = color.New(color.FgHiGreen).SprintFunc()
	statusWarn = color.New(color.FgHiYellow).SprintFunc()
)

var reviewCmd = &cobra.Command{
	Use:   "review <input.json>",
	Short: "Transform a review into empathetic mentoring",
	Long: `Review reads a JSON document with two required fields, code_snippet and
review_comments, classifies each comment, detects code patterns, and
produces the empathetic review report. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		req, err := readRequest(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		runReview(req, cfg)
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&flagEngine, "engine", "", "Completion engine (anthropic, gemini, ollama, auto)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	reviewCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Cloud engine API key (overrides environment)")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().StringVar(&flagTables, "tables", "", "YAML tables overlay file")
	reviewCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum completion tokens")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	reviewCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the completion response cache")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagEngine != "" {
		m["engine"] = flagEngine
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	if flagTables != "" {
		m["tablesFile"] = flagTables
	}
	return m
}

// readRequest loads the review request from a file path or stdin.
func readRequest(path string) (review.Request, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return review.Request{}, fmt.Errorf("reading input: %w", err)
	}

	var req review.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return review.Request{}, fmt.Errorf("parsing input JSON: %w", err)
	}
	return req, nil
}

func runReview(req review.Request, cfg config.Config) {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, statusWarn("WARNING:"), "secret redaction is disabled")
	}
	if flagNoCache {
		cfg.Cache.Enabled = false
	}

	tables, err := review.LoadTables(cfg.TablesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	completer, err := engines.New(cfg.Engine, engines.Options{
		Model:       cfg.Model,
		APIKey:      flagAPIKey,
		OllamaHost:  cfg.OllamaHost,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if engines.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}
	fmt.Fprintln(os.Stderr, statusInfo("engine:"), completer.Name())

	if cfg.Privacy.RedactSecrets {
		completer = engines.WithRedaction(completer)
	}
	if cfg.Cache.Enabled {
		store, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		completer = engines.WithCache(completer, store, cfg.Model, func() {
			fmt.Fprintln(os.Stderr, statusOK("cache hit:"), "reusing stored completion")
		})
	}

	res, err := review.Run(context.Background(), tables, req, completer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if review.IsInputError(err) {
			exitCode = ExitUsageError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	if err := output.WriteResult(res, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if flagOut != "" {
		fmt.Fprintln(os.Stderr, statusOK("report written:"), flagOut)
	}

	if res.CompletionErr != nil {
		fmt.Fprintln(os.Stderr, statusWarn("completion failed:"), res.CompletionErr)
		fmt.Fprintln(os.Stderr, "The report contains an error placeholder in place of the AI analysis.")
		exitCode = ExitDegraded
	}
}
