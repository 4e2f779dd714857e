// Package report renders analyzer results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"fjacquet/txn-analyzer/internal/config"
	"fjacquet/txn-analyzer/internal/logging"
	"fjacquet/txn-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// Generator writes summaries, record lists and single query results.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger disables logging.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Generator{logger: logger.WithField(logging.FieldComponent, "report")}
}

// WriteSummary renders s to w in format.
func (g *Generator) WriteSummary(w io.Writer, s *Summary, format string) error {
	switch format {
	case config.FormatText:
		return g.writeSummaryText(w, s)
	case config.FormatJSON:
		return g.encodeJSON(w, s)
	case config.FormatYAML:
		return g.encodeYAML(w, s)
	default:
		return unsupportedFormat(format)
	}
}

// WriteTransactions renders txs to w in format. Text output puts one record per line.
func (g *Generator) WriteTransactions(w io.Writer, txs []models.Transaction, format string) error {
	switch format {
	case config.FormatText:
		for _, tx := range txs {
			if _, err := fmt.Fprintln(w, tx.DisplayString()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		return g.encodeJSON(w, txs)
	case config.FormatYAML:
		return g.encodeYAML(w, txs)
	default:
		return unsupportedFormat(format)
	}
}

// WriteValue renders a single named query result. Structured formats wrap it in a
// one-key object named label.
func (g *Generator) WriteValue(w io.Writer, label string, value interface{}, format string) error {
	switch format {
	case config.FormatText:
		return writeValueText(w, label, value)
	case config.FormatJSON:
		return g.encodeJSON(w, map[string]interface{}{label: value})
	case config.FormatYAML:
		return g.encodeYAML(w, map[string]interface{}{label: value})
	default:
		return unsupportedFormat(format)
	}
}

func (g *Generator) writeSummaryText(w io.Writer, s *Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Report ID", s.ReportID.String()},
		{"Generated at", s.GeneratedAt.Format(time.RFC3339)},
		{"Transactions", fmt.Sprint(s.TransactionCount)},
		{"Transaction types", strings.Join(s.UniqueTypes, ", ")},
		{"Total amount", s.TotalAmount},
		{"Total debit amount", s.TotalDebitAmount},
		{"Average amount", s.AverageAmount},
		{"Busiest month", s.MostTransactionsMonth},
		{"Busiest debit month", s.MostDebitTransactionsMonth},
		{"Dominant type", s.DominantType},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Descriptions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Descriptions:"); err != nil {
		return err
	}
	for _, d := range s.Descriptions {
		if _, err := fmt.Fprintf(w, "  - %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func writeValueText(w io.Writer, label string, value interface{}) error {
	switch v := value.(type) {
	case models.Describable:
		_, err := fmt.Fprintf(w, "%s: %s\n", label, v.DisplayString())
		return err
	case []string:
		if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
			return err
		}
		for _, s := range v {
			if _, err := fmt.Fprintf(w, "  - %s\n", s); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s: %v\n", label, v)
		return err
	}
}

func (g *Generator) encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON output")
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	return nil
}

func (g *Generator) encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML output")
		return fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	return enc.Close()
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported output format: %s", format)
}
