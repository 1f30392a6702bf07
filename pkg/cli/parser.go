package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
)

// Record is one row of a tabular word list, keyed by column header.
type Record map[string]string

// loadFiles fills dict from the given paths, dispatching on the file
// extension: .json for word-to-definition objects, .csv for tables
// with a header row, anything else for one word per line.
func loadFiles(ctx *Context, dict *dictionary.Dictionary, paths []string) error {
	wordKey := ctx.Cfg.Dictionary.WordKey
	definitionKey := ctx.Cfg.Dictionary.DefinitionKey

	for _, path := range paths {
		loaded := 0
		onEach := func(entry dictionary.Entry) error {
			dict.Add(entry.Word, entry.Definition)
			loaded++
			return nil
		}

		var err error
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			err = parseJSON(path, onEach)
		case ".csv":
			err = parseCSV(path, wordKey, definitionKey, onEach)
		default:
			err = parseText(path, onEach)
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		ctx.Log.Info().Str("file", path).Int("entries", loaded).Msg("loaded word list")
	}
	return nil
}

// parseText reads one word per line, skipping blank lines and comments.
func parseText(path string, onEach func(dictionary.Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := onEach(dictionary.Entry{Word: word}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseJSON reads a single JSON object mapping words to definitions.
// The object is decoded entry by entry so large files never load whole.
func parseJSON(path string, onEach func(dictionary.Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// opening brace of the object
	if _, err := decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		word, ok := token.(string)
		if !ok {
			return fmt.Errorf("expected a word, got token %v", token)
		}

		var definition string
		if err := decoder.Decode(&definition); err != nil {
			return err
		}
		if err := onEach(dictionary.Entry{Word: word, Definition: definition}); err != nil {
			return err
		}
	}

	// closing brace of the object
	if _, err := decoder.Token(); err != nil {
		return err
	}
	return nil
}

// parseCSV reads a table whose first line names the columns, taking
// words from the wordKey column and definitions, when present, from
// the definitionKey column.
func parseCSV(path, wordKey, definitionKey string, onEach func(dictionary.Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, ok := record[wordKey]
		if !ok || word == "" {
			return fmt.Errorf("row has no %q column: %v", wordKey, record)
		}
		if err := onEach(dictionary.Entry{Word: word, Definition: record[definitionKey]}); err != nil {
			return err
		}
	}
	return nil
}
