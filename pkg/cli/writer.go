package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
)

// Writer persists a list of dictionary entries.
type Writer interface {
	Write(entries []dictionary.Entry, path string) error
}

// Stats counts the entries flowing through a command for the final log
// line.
type Stats struct {
	Loaded int
	Output int
}

// newWriter picks the writer for an output format name.
func newWriter(format string, stats *Stats) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{Stats: stats}, nil
	case "csv":
		return &CSVWriter{Stats: stats}, nil
	case "tsv":
		return &CSVWriter{TSV: true, Stats: stats}, nil
	case "text":
		return &TextWriter{Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// JSONWriter writes entries as a JSON object mapping words to
// definitions, the same shape the loader reads.
type JSONWriter struct {
	Stats *Stats
}

func (w *JSONWriter) Write(entries []dictionary.Entry, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	object := make(map[string]string, len(entries))
	for _, entry := range entries {
		object[entry.Word] = entry.Definition
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(object); err != nil {
		return err
	}
	w.Stats.Output += len(entries)
	return nil
}

// CSVWriter writes entries as a word/definition table with a header
// row, tab-separated when TSV is set.
type CSVWriter struct {
	TSV   bool
	Stats *Stats
}

func (w *CSVWriter) Write(entries []dictionary.Entry, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if w.TSV {
		writer.Comma = '\t'
	}
	defer writer.Flush()

	if err := writer.Write([]string{"word", "definition"}); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Word, entry.Definition}); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return writer.Error()
}

// TextWriter writes one word per line, dropping definitions.
type TextWriter struct {
	Stats *Stats
}

func (w *TextWriter) Write(entries []dictionary.Entry, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := writer.WriteString(entry.Word + "\n"); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return writer.Flush()
}
