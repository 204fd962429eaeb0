package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/task"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// parseCmd implements 'taskcli parse <text>'.
func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Turn a free-text description into a structured task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx, true)
			if err != nil {
				return err
			}

			out, err := a.task.Parse(ctx, task.ParseInput{
				RawInput: strings.Join(args, " "),
				Now:      time.Now(),
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFmt, newTaskRecord(out.Task, a.parser.Location()))
		},
	}
}

type collectionFlags struct {
	file   string
	period string
	filter bool
}

func (f *collectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "JSON file holding an array of tasks (- for stdin)")
	cmd.Flags().StringVarP(&f.period, "period", "p", string(model.PeriodWeek), "Summary period: today or week")
	cmd.Flags().BoolVar(&f.filter, "filter", false, "Keep only tasks due within the period")
	_ = cmd.MarkFlagRequired("file")
}

func (f *collectionFlags) input() (summary.SummarizeInput, error) {
	tasks, err := readTasksFile(f.file)
	if err != nil {
		return summary.SummarizeInput{}, err
	}
	return summary.SummarizeInput{
		Tasks:          tasks,
		Period:         model.Period(f.period),
		FilterByPeriod: f.filter,
		Now:            time.Now(),
	}, nil
}

// summarizeCmd implements 'taskcli summarize --file tasks.json'.
func summarizeCmd() *cobra.Command {
	var flags collectionFlags
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Analyze a task collection and generate an AI summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := flags.input()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx, true)
			if err != nil {
				return err
			}

			out, err := a.summary.Summarize(ctx, input)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFmt, out.Insight)
		},
	}
	flags.bind(cmd)
	return cmd
}

// analyzeCmd implements 'taskcli analyze --file tasks.json'. It never calls the model.
func analyzeCmd() *cobra.Command {
	var flags collectionFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the analytics snapshot of a task collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := flags.input()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}

			snap, err := a.summary.Analyze(ctx, input)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFmt, snap)
		},
	}
	flags.bind(cmd)
	return cmd
}

// tipCmd implements 'taskcli tip'.
func tipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Print one short productivity tip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx, true)
			if err != nil {
				return err
			}

			out, err := a.summary.Tip(ctx)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFmt, out)
		},
	}
}
