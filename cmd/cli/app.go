package main

import (
	"context"
	"fmt"

	"ai-task-assistant/config"
	"ai-task-assistant/internal/summary"
	summaryUC "ai-task-assistant/internal/summary/usecase"
	"ai-task-assistant/internal/task"
	taskUC "ai-task-assistant/internal/task/usecase"
	"ai-task-assistant/pkg/datemath"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/log"
)

// app is the wiring shared by every subcommand. The CLI runs one request per
// process, so the summary cache is left out.
type app struct {
	l       log.Logger
	parser  *datemath.Parser
	task    task.UseCase
	summary summary.UseCase
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// newApp builds the use cases. withModel=false skips provider setup so that
// offline commands such as analyze work without credentials.
func newApp(ctx context.Context, withModel bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil && withModel {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg == nil {
		cfg = &config.Config{App: config.AppConfig{Timezone: config.DefaultTimezone}}
	}

	l := log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     "production",
		Encoding: "console",
	})

	parser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	var llm llmprovider.Generator
	if withModel {
		providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
		if err != nil {
			return nil, fmt.Errorf("init providers: %w", err)
		}
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		}, l)
	}

	return &app{
		l:       l,
		parser:  parser,
		task:    taskUC.New(l, llm, parser),
		summary: summaryUC.New(l, llm, nil, parser.Location()),
	}, nil
}
