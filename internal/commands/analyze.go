package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denialscope-dev/denialscope/internal/analyzer"
	"github.com/denialscope-dev/denialscope/internal/config"
	"github.com/denialscope-dev/denialscope/internal/loader"
	"github.com/denialscope-dev/denialscope/internal/report"
)

func newAnalyzeCommand() *cobra.Command {
	var format string
	var out string
	var configPath string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a billing export for denial patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], format, out, configPath)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "input format (csv, xlsx, xls); default from file extension")
	cmd.Flags().StringVar(&out, "out", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "denialscope.yaml", "config file")

	return cmd
}

func runAnalyze(path, format, out, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry := loader.DefaultRegistry()
	var reader loader.Reader
	if format != "" {
		reader = registry.Get(format)
	} else {
		reader = registry.ForPath(path)
	}
	if reader == nil {
		return fmt.Errorf("unsupported input format for %s (supported: csv, xlsx, xls)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	grid, err := reader.Read(f)
	if err != nil {
		return errors.New(report.UserMessage(err))
	}

	table, err := loader.Clean(grid)
	if err != nil {
		return errors.New(report.UserMessage(err))
	}

	analysis, err := analyzer.Aggregate(table)
	for _, warn := range analysis.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	if err != nil {
		return errors.New(report.UserMessage(err))
	}

	rep := report.Build(analysis)

	dst := os.Stdout
	if out != "" {
		dst, err = os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer dst.Close()
	}

	if err := report.WriteMarkdown(dst, table, rep, cfg.Report.PreviewRows); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if out != "" {
		fmt.Printf("Report written to %s\n", out)
	}
	return nil
}
