package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/pkg/logging"
	"passwordStrengthChecker/internal/port"
)

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

type Session struct {
	analyzer port.StrengthAnalyzer
	exporter port.ReportExporter
	input    Prompter
	out      io.Writer
	log      *logging.Logger
}

func NewSession(analyzer port.StrengthAnalyzer, exporter port.ReportExporter, input Prompter, out io.Writer, log *logging.Logger) *Session {
	return &Session{
		analyzer: analyzer,
		exporter: exporter,
		input:    input,
		out:      out,
		log:      logging.OrNop(log).WithComponent("terminal"),
	}
}

// Run loops until the user quits, input ends or ctx is cancelled. End of
// input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, banner)
	fmt.Fprintln(s.out, "Enter passwords to analyze. Type 'quit' or 'exit' to stop.")
	fmt.Fprintln(s.out)

	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(s.out, "\nInterrupted. Goodbye!")
			return nil
		}

		fmt.Fprintln(s.out, strings.Repeat("─", width))
		password, err := s.input.ReadPassword("Enter password (hidden): ")
		if err != nil {
			return s.endOfInput(err)
		}

		if quitWords[strings.ToLower(password)] {
			fmt.Fprintln(s.out, "\nGoodbye! Stay secure!")
			return nil
		}
		if password == "" {
			fmt.Fprintln(s.out, "⚠️  Please enter a password.")
			fmt.Fprintln(s.out)
			continue
		}

		fmt.Fprintln(s.out, "\nAnalyzing password...")
		report := s.analyzer.Analyze(password)
		RenderReport(s.out, report)

		if err := s.offerExport(report); err != nil {
			return s.endOfInput(err)
		}

		again, err := s.input.ReadLine("Analyze another password? (y/n): ")
		if err != nil {
			return s.endOfInput(err)
		}
		if a := strings.ToLower(again); a != "y" && a != "yes" {
			fmt.Fprintln(s.out, "\nGoodbye! Stay secure!")
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Session) offerExport(report domain.Report) error {
	choice, err := s.input.ReadLine("Export report? (json/txt/n): ")
	if err != nil {
		return err
	}
	format, err := domain.ParseExportFormat(choice)
	if err != nil {
		return nil
	}

	name, err := s.input.ReadLine("Enter filename (without extension): ")
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}

	path := name + "." + string(format)
	if err := s.exporter.Export(report, path, format); err != nil {
		s.log.Warn("export failed", "path", path, "format", string(format), "error", err)
		fmt.Fprintf(s.out, "✗ Error exporting: %v\n\n", err)
		return nil
	}
	s.log.Info("report exported", "path", path, "format", string(format))
	fmt.Fprintf(s.out, "✓ Report exported to %s\n\n", path)
	return nil
}

func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nGoodbye! Stay secure!")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
