// Package main is a command line front end that runs the phishing analysis locally.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stoik.com/phishscan/internal/client"
	"stoik.com/phishscan/internal/config"
	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/service"
	"stoik.com/phishscan/internal/parser"
)

var (
	subject  string
	sender   string
	body     string
	bodyFile string
	jsonOut  bool
	timeout  time.Duration

	colorRed    = color.New(color.FgRed, color.Bold)
	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow, color.Bold)
	colorCyan   = color.New(color.FgCyan)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		colorRed.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "phishscan",
	Short:         "Score an email for phishing risk",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.WarnLevel)
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Analyse a subject, sender and body",
	RunE: func(cmd *cobra.Command, args []string) error {
		content := body
		if bodyFile != "" {
			raw, err := readInput(bodyFile)
			if err != nil {
				return err
			}
			content = string(raw)
		}
		payload := domain.NewTextPayload(subject, content, sender)

		svc, err := newAnalysisService(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		assessment, err := svc.AnalyzeText(ctx, payload)
		if err != nil {
			return err
		}
		return printAssessment(cmd.OutOrStdout(), assessment)
	},
}

var emlCmd = &cobra.Command{
	Use:   "eml <file|->",
	Short: "Analyse a raw .eml message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args[0])
		if err != nil {
			return err
		}
		message, err := parser.NewEMLParser().Parse(raw)
		if err != nil {
			return err
		}

		svc, err := newAnalysisService(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		assessment, err := svc.AnalyzeEmail(ctx, message)
		if err != nil {
			return err
		}
		return printAssessment(cmd.OutOrStdout(), assessment)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print the assessment as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "analysis timeout")

	textCmd.Flags().StringVar(&subject, "subject", "", "email subject")
	textCmd.Flags().StringVar(&sender, "sender", "", "sender address")
	textCmd.Flags().StringVar(&body, "body", "", "email body")
	textCmd.Flags().StringVar(&bodyFile, "body-file", "", "read the body from a file (- for stdin)")
	textCmd.MarkFlagsMutuallyExclusive("body", "body-file")

	rootCmd.AddCommand(textCmd, emlCmd)
}

func newAnalysisService(ctx context.Context) (*service.AnalysisService, error) {
	validate := validator.New()
	cfg, err := config.Load(validate)
	if err != nil {
		return nil, err
	}

	mlClient, err := client.NewMLClient(ctx, cfg.ML())
	if err != nil {
		return nil, err
	}

	svc := service.NewAnalysisService(
		mlClient,
		validate,
		service.NewEvaluators(service.DefaultPolicy(), service.DefaultBrands(), nil)...,
	)
	return svc, nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return raw, nil
}

func printAssessment(w io.Writer, a domain.RiskAssessment) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	verdictColor := colorGreen
	switch a.Verdict {
	case domain.VerdictPhishing:
		verdictColor = colorRed
	case domain.VerdictSuspicious:
		verdictColor = colorYellow
	}

	verdictColor.Fprintf(w, "%s", a.Verdict)
	fmt.Fprintf(w, "  score %d/100  risk %s\n", a.Score, a.RiskLevel)
	colorCyan.Fprintf(w, "ML: %s (model score %.1f)\n", a.MLAnalysis.Label, a.MLAnalysis.ModelScore)

	if len(a.Triggers) == 0 {
		fmt.Fprintln(w, "No triggers")
		return nil
	}
	fmt.Fprintln(w, "Triggers:")
	for _, t := range a.Triggers {
		fmt.Fprintf(w, "  - %s\n", t)
	}
	return nil
}
