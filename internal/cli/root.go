// Package cli implements the insights command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"meeting-insights/config"
	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/classifier"
	"meeting-insights/internal/insight/repository/memory"
	"meeting-insights/internal/insight/usecase"
	"meeting-insights/pkg/log"
)

const defaultMaxUploadBytes = 5 << 20

type rootOptions struct {
	configPath     string
	vocabularyPath string
	verbose        bool
}

// NewRootCommand builds the insights command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Extract participation, tasks and decisions from meeting minutes",
		Long: `insights reads Spanish or English meeting minutes and reports who spoke,
which action items were assigned and which decisions were taken.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (vocabulary path, upload limit, calendar)")
	cmd.PersistentFlags().StringVar(&opts.vocabularyPath, "vocabulary", "", "vocabulary YAML overriding the built-in word lists")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newAnalyzeCommand(opts),
		newCalendarAuthCommand(opts),
		newVersionCommand(version),
	)
	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand(version)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.New(color.FgRed).Sprint("Error: ")+err.Error())
		return 1
	}
	return 0
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return nil, nil
	}
	return config.LoadFile(o.configPath)
}

// environment wires the same use case the HTTP server uses, with an in-process repository.
func (o *rootOptions) environment(errOut io.Writer) (insight.UseCase, *classifier.Classifier, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	vocabPath := o.vocabularyPath
	maxUpload := int64(defaultMaxUploadBytes)
	if cfg != nil {
		if vocabPath == "" {
			vocabPath = cfg.Insights.VocabularyPath
		}
		maxUpload = cfg.Insights.MaxUploadBytes
	}

	vocab, err := classifier.LoadVocabulary(vocabPath)
	if err != nil {
		return nil, nil, err
	}
	cls, err := classifier.New(vocab)
	if err != nil {
		return nil, nil, err
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: "debug", Encoding: "console", ColorEnabled: true, Output: errOut})

	uc := usecase.New(l, cls, memory.New(0, 0), nil, usecase.CalendarOptions{}, maxUpload)
	return uc, cls, nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "insights %s\n", version)
		},
	}
}
