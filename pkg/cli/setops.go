package cli

import (
	"github.com/jakobknauer/gotrie/pkg/dictionary"
)

// MergeCmd writes the union of two word lists; definitions from the
// second list win where a word appears in both.
type MergeCmd struct {
	Left   string `arg:"" type:"existingfile" help:"First word list."`
	Right  string `arg:"" type:"existingfile" help:"Second word list."`
	Output string `short:"o" default:"merged.json" help:"Output path."`
	Format string `enum:"json,csv,tsv,text" default:"json" help:"Output format (json, csv, tsv, text)."`
}

// Run executes the merge command.
func (cmd *MergeCmd) Run(ctx *Context) error {
	return runSetOp(ctx, cmd.Left, cmd.Right, cmd.Output, cmd.Format,
		func(left, right *dictionary.Dictionary) *dictionary.Dictionary {
			return left.Merge(right)
		})
}

// DiffCmd writes the words of the first list that are missing from the
// second, keeping the first list's definitions.
type DiffCmd struct {
	Left   string `arg:"" type:"existingfile" help:"First word list."`
	Right  string `arg:"" type:"existingfile" help:"Second word list."`
	Output string `short:"o" default:"diff.json" help:"Output path."`
	Format string `enum:"json,csv,tsv,text" default:"json" help:"Output format (json, csv, tsv, text)."`
}

// Run executes the diff command.
func (cmd *DiffCmd) Run(ctx *Context) error {
	return runSetOp(ctx, cmd.Left, cmd.Right, cmd.Output, cmd.Format,
		func(left, right *dictionary.Dictionary) *dictionary.Dictionary {
			return left.Subtract(right)
		})
}

// CommonCmd writes the words present in both lists, with definitions
// taken from the second.
type CommonCmd struct {
	Left   string `arg:"" type:"existingfile" help:"First word list."`
	Right  string `arg:"" type:"existingfile" help:"Second word list."`
	Output string `short:"o" default:"common.json" help:"Output path."`
	Format string `enum:"json,csv,tsv,text" default:"json" help:"Output format (json, csv, tsv, text)."`
}

// Run executes the common command.
func (cmd *CommonCmd) Run(ctx *Context) error {
	return runSetOp(ctx, cmd.Left, cmd.Right, cmd.Output, cmd.Format,
		func(left, right *dictionary.Dictionary) *dictionary.Dictionary {
			return left.Common(right)
		})
}

// runSetOp loads both operands, combines them, and writes the result.
func runSetOp(ctx *Context, leftPath, rightPath, output, format string,
	combine func(left, right *dictionary.Dictionary) *dictionary.Dictionary) error {

	alphabet := ctx.Cfg.Dictionary.Alphabet
	left := dictionary.New(alphabet)
	if err := loadFiles(ctx, left, []string{leftPath}); err != nil {
		return err
	}
	right := dictionary.New(alphabet)
	if err := loadFiles(ctx, right, []string{rightPath}); err != nil {
		return err
	}

	stats := &Stats{Loaded: left.Len() + right.Len()}
	writer, err := newWriter(format, stats)
	if err != nil {
		return err
	}

	result := combine(left, right)
	if err := writer.Write(result.Entries(), output); err != nil {
		return err
	}

	ctx.Log.Info().
		Int("loaded", stats.Loaded).
		Int("output", stats.Output).
		Str("file", output).
		Msg("wrote combined word list")
	return nil
}
