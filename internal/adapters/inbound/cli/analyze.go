package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/adapters/outbound/collector"
	"github.com/designqa/designqa/internal/adapters/outbound/remote"
	"github.com/designqa/designqa/internal/adapters/outbound/tui"
	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		badge      bool
		checks     string
		remoteURL  string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Score a design document",
		Long: "Analyze a JSON or YAML design document and print its design quality report.\n" +
			"With no file, or when file is -, the document is read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}

			overrides, err := application.ParseChecks(checks)
			if err != nil {
				return err
			}

			a, err := newApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.close()

			report, err := runAnalysis(cmd.Context(), cmd.InOrStdin(), a, path, overrides, remoteURL)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !cmd.Flags().Changed("min") {
				minScore = a.cfg.MinScore
			}
			if ciMode && report.OverallScore < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.OverallScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode (default min_score from .designqa.yaml)")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().StringVar(&checks, "checks", "", "Comma-separated categories to run (default: all enabled in config)")
	cmd.Flags().StringVar(&remoteURL, "remote", "", "Score on a designqa server at this URL, falling back to local scoring")

	return cmd
}

func runAnalysis(ctx context.Context, stdin io.Reader, a *app, path string, overrides *domain.AnalysisOptions, remoteURL string) (*domain.Report, error) {
	if path != "-" && remoteURL == "" {
		return a.svc.AnalyzeDocument(ctx, path, overrides)
	}

	doc, err := readDocument(stdin, path)
	if err != nil {
		return nil, err
	}
	checks := a.svc.Checks(doc.Options, overrides)

	if remoteURL == "" {
		return a.svc.AnalyzeRaw(ctx, doc.Elements, checks)
	}

	elements, skipped := a.collector.Collect(doc.Elements)
	for _, s := range skipped {
		a.logger.Warn("skipping host record", zap.Int("index", s.Index), zap.Error(s.Err))
	}
	analyzer := application.NewFallbackAnalyzer(remote.NewClient(remoteURL, nil), a.svc, a.logger)
	return analyzer.Analyze(ctx, elements, checks)
}

func readDocument(stdin io.Reader, path string) (*domain.Document, error) {
	if path != "-" {
		return collector.LoadDocument(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	doc, err := collector.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing stdin: %w", err)
	}
	return doc, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, report *domain.Report) {
	color := domain.BadgeColor(report.OverallScore)
	url := fmt.Sprintf("https://img.shields.io/badge/designqa-%d%%2F100-%s", report.OverallScore, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
