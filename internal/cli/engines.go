package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/engines"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "Completion engine management",
}

type engineInfo struct {
	Engine string
	Models []string
}

var knownEngines = []engineInfo{
	{
		Engine: "anthropic",
		Models: []string{
			"claude-sonnet-4-20250514",
			"claude-opus-4-20250514",
			"claude-3-5-haiku-20241022",
		},
	},
	{
		Engine: "gemini",
		Models: []string{
			"gemini-1.5-flash",
			"gemini-1.5-pro",
			"gemini-2.0-flash",
		},
	},
	{
		Engine: "ollama",
		Models: []string{
			"llama3.1:8b",
			"llama3.2",
			"codellama",
			"qwen2.5-coder",
		},
	},
}

var enginesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known engines and models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range knownEngines {
			fmt.Fprintf(os.Stdout, "%s:\n", info.Engine)
			for _, m := range info.Models {
				fmt.Fprintf(os.Stdout, "  - %s\n", m)
			}
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, "auto: picks the first engine with usable credentials")
	},
}

var enginesDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate engine credentials and connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Engine)

		completer, err := engines.New(cfg.Engine, engines.Options{
			Model:       cfg.Model,
			APIKey:      flagAPIKey,
			OllamaHost:  cfg.OllamaHost,
			MaxTokens:   16,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = completer.Complete(ctx, "Respond with exactly: ok")
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if engines.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and responding\n", completer.Name())
		return nil
	},
}

func init() {
	enginesCmd.AddCommand(enginesListCmd)
	enginesCmd.AddCommand(enginesDoctorCmd)
	enginesDoctorCmd.Flags().StringVar(&flagEngine, "engine", "", "Engine to check")
	enginesDoctorCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key (overrides environment)")
}
