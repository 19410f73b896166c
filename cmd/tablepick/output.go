package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

// selectionSummary is the machine-readable form of a selection. Cells are
// omitted because they are implied by rows and cols.
type selectionSummary struct {
	Rows      int    `json:"rows" yaml:"rows"`
	Cols      int    `json:"cols" yaml:"cols"`
	Cells     int    `json:"cells" yaml:"cells"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

func writeSelection(out io.Writer, format string, sel layout.Selection) error {
	summary := selectionSummary{
		Rows:      sel.Rows,
		Cols:      sel.Cols,
		Cells:     len(sel.Cells),
		Timestamp: sel.Timestamp.UTC().Format(time.RFC3339),
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case outputYAML:
		data, err := config.Marshal(summary)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(out, layout.FormatSelectionText(sel.Rows, sel.Cols))
		return err
	}
}

// openLogger writes to logFile when set and discards logs otherwise, since
// the terminal belongs to the picker.
func openLogger(logFile, level string) (ports.Logger, func(), error) {
	if logFile == "" {
		return logger.NewNop(), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f, Component: "tablepick"})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil
}
