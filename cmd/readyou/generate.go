package main

import (
	"fmt"
	"os"
	"time"

	"readyou/internal/config"
	"readyou/internal/generate"
	"readyou/internal/llm"
	"readyou/internal/logging"
	"readyou/internal/scan"

	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	repoPath := args[0]

	cfg, err := config.Load(configSearchDirs())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	logger := logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(level),
	})

	model := cfg.OpenAI.Model
	if modelFlag != "" {
		model = modelFlag
	}

	collector := scan.NewCollector(logger, cfg.Scan.Ignore)
	result, err := collector.Collect(repoPath)
	if err != nil {
		return err
	}

	primary := scan.PrimaryExtensions(result.Counts())
	logger.Info("Primary languages selected", map[string]interface{}{
		"languages": primary,
	})

	set := scan.NewRanker(logger).Rank(result, primary)
	projectType := scan.DetectProjectType(set)

	client := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second)
	generator := generate.NewGenerator(client, model, logger)

	content, err := generator.Generate(cmd.Context(), set, projectType, verboseFlag)
	if err != nil {
		return err
	}

	if dryRunFlag {
		generate.Print(os.Stdout, content)
		return nil
	}

	path, err := generate.Save(repoPath, content)
	if err != nil {
		return err
	}
	fmt.Printf("README generated at: %s\n", path)
	return nil
}
