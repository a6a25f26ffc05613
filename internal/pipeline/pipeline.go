// Package pipeline assembles a ready-to-run expansion engine from the
// user's config and command-line flags.
package pipeline

import (
	"fmt"
	"io"

	"github.com/open-doc-collective/doctag/internal/config"
	"github.com/open-doc-collective/doctag/internal/view"
	"github.com/open-doc-collective/doctag/pkg/format"
	"github.com/open-doc-collective/doctag/pkg/tag"
)

// Options select the adapter pair and engine limits. Zero values defer to
// the config file; flags win over config.
type Options struct {
	Format   string
	MaxDepth int
	NoColor  bool
}

// New builds the engine with the builtin tag set, the configured
// abbreviations, and the named format's adapters. Diagnostics stream to
// stderr through the returned printer, which also counts them for --strict.
func New(opts Options, stderr io.Writer) (*tag.Engine, *view.DiagPrinter, error) {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg, opts, stderr)
}

// NewWithConfig is New with an explicit config, for tests and embedders.
func NewWithConfig(cfg *config.Config, opts Options, stderr io.Writer) (*tag.Engine, *view.DiagPrinter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w (run 'dtag init' to configure)", err)
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = cfg.Format
	}
	pair, err := format.ForName(formatName)
	if err != nil {
		return nil, nil, err
	}

	reg := tag.NewRegistry()
	if err := tag.Builtin(reg); err != nil {
		return nil, nil, err
	}

	diags := view.NewDiagPrinter(stderr, opts.NoColor)

	engineOpts := []tag.Option{tag.WithAbbreviations(cfg.AbbreviationTable())}
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = cfg.MaxDepth
	}
	if maxDepth > 0 {
		engineOpts = append(engineOpts, tag.WithMaxDepth(maxDepth))
	}

	engine := tag.NewEngine(reg, tag.Adapters{
		Convert:   pair.Convert,
		Paragraph: pair.Paragraph,
		Diag:      diags.Sink(),
	}, engineOpts...)

	return engine, diags, nil
}
