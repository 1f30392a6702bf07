// Package cli wires the dictionary operations into a command-line
// front end: an interactive query loop, set-operation commands over
// word lists, and a small HTTP lookup service.
package cli

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/jakobknauer/gotrie/pkg/config"
)

// CLI is the kong command tree.
var CLI struct {
	Config string `help:"Path to a YAML config file." type:"existingfile"`
	Debug  bool   `help:"Enable debug logging."`

	Query  QueryCmd  `cmd:"" help:"Load word lists and answer interactive lookups."`
	Merge  MergeCmd  `cmd:"" help:"Write the union of two word lists."`
	Diff   DiffCmd   `cmd:"" help:"Write the words of the first list that are missing from the second."`
	Common CommonCmd `cmd:"" help:"Write the words present in both lists."`
	Serve  ServeCmd  `cmd:"" help:"Serve dictionary lookups over HTTP."`
}

// Context is passed to every command's Run method.
type Context struct {
	Log zerolog.Logger
	Cfg *config.Config
}

// NewContext builds the shared command context from the global flags.
func NewContext(configPath string, debug bool) (*Context, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &Context{Log: logger, Cfg: cfg}, nil
}
