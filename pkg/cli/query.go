package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jakobknauer/gotrie/pkg/dictionary"
	"github.com/jakobknauer/gotrie/pkg/trie"
)

// QueryCmd loads word lists and answers lookups read from stdin.
type QueryCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Word lists to load (text, JSON, or CSV)."`
	Limit int      `help:"Maximum number of completions to show (0 uses the configured default)."`
}

// Run executes the query command.
func (cmd *QueryCmd) Run(ctx *Context) error {
	dict := dictionary.New(ctx.Cfg.Dictionary.Alphabet)
	if err := loadFiles(ctx, dict, cmd.Files); err != nil {
		return err
	}

	stats := dict.Stats()
	ctx.Log.Info().
		Int("words", stats.Words).
		Int("nodes", stats.Nodes).
		Int("max_depth", stats.MaxDepth).
		Msg("dictionary ready")

	limit := cmd.Limit
	if limit <= 0 {
		limit = ctx.Cfg.Query.SuggestionLimit
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Enter word to search for: ")
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			answer(dict, word, limit)
		}
		fmt.Print("Enter word to search for: ")
	}
	return scanner.Err()
}

// answer prints membership, the stored definition if any, and the first
// completions for word.
func answer(dict *dictionary.Dictionary, word string, limit int) {
	definition, err := dict.Define(word)
	switch {
	case errors.Is(err, trie.ErrKeyNotFound):
		fmt.Printf("The word %q is not contained in the dictionary.\n", word)
	case definition != "":
		fmt.Printf("The word %q is contained in the dictionary: %s\n", word, definition)
	default:
		fmt.Printf("The word %q is contained in the dictionary.\n", word)
	}

	completions := dict.Complete(word, 0)
	fmt.Printf("There are %d words starting with %q in the dictionary", len(completions), word)
	if len(completions) == 0 {
		fmt.Println(".")
	} else if len(completions) <= limit {
		fmt.Printf(", namely %s.\n", joinWords(completions))
	} else {
		fmt.Printf(", the first %d of which are %s.\n", limit, joinWords(completions[:limit]))
	}
	fmt.Println()
}

func joinWords(entries []dictionary.Entry) string {
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Word)
	}
	return strings.Join(words, ", ")
}
