package cmd

import (
	"context"
	"time"

	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/quantmind-br/pipctl/internal/history"
	"github.com/quantmind-br/pipctl/internal/pip"
	"github.com/quantmind-br/pipctl/internal/runner"
	"github.com/quantmind-br/pipctl/internal/sources"
	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// buildRegistry assembles the source registry: built-in mirrors first,
// then config extras, then entries from the sources file.
func buildRegistry(cfg *config.Config) (*sources.Registry, error) {
	srcs := sources.Defaults()

	for _, e := range cfg.Sources.Extra {
		srcs = append(srcs, sources.Source{Name: e.Name, URL: e.URL})
	}

	if cfg.Paths.SourcesFile != "" {
		fileSrcs, err := sources.LoadFile(afero.NewOsFs(), cfg.Paths.SourcesFile)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, fileSrcs...)
	}

	return sources.New(srcs)
}

// selectSource decides which mirror an install/upgrade talks to.
// Precedence: explicit --index-url, interactive --select, --source by
// name, the configured default, the registry's first entry.
func selectSource(cfg *config.Config, reg *sources.Registry, srcName, indexURL string, interactive bool) (name, url string, err error) {
	if indexURL != "" {
		return "custom", indexURL, nil
	}

	if interactive {
		options := make([]ui.SourceOption, 0, reg.Len())
		for _, s := range reg.All() {
			options = append(options, ui.SourceOption{Name: s.Name, URL: s.URL})
		}
		chosen, err := ui.SelectSourcePrompt("Select mirror source", options)
		if err != nil {
			return "", "", err
		}
		return chosen.Name, chosen.URL, nil
	}

	if srcName == "" {
		srcName = cfg.Sources.Default
	}
	if srcName == "" {
		def := reg.Default()
		return def.Name, def.URL, nil
	}

	url, err = reg.Resolve(srcName)
	if err != nil {
		return "", "", err
	}
	return srcName, url, nil
}

// pipExecutable returns the configured pip binary, falling back to PATH
// resolution.
func pipExecutable(cfg *config.Config) string {
	if cfg.Pip.Executable != "" {
		return cfg.Pip.Executable
	}
	return pip.DefaultExecutable()
}

// execute runs the command through the runner. In async mode a spinner
// animates on the main goroutine until the worker delivers its result;
// in wait mode the caller blocks directly.
func execute(ctx context.Context, run *runner.Runner, cmd pip.Command, wait bool, description string) (runner.Result, error) {
	if wait {
		return run.Run(ctx, cmd), nil
	}

	ch, err := run.RunAsync(ctx, cmd)
	if err != nil {
		return runner.Result{}, err
	}

	spinner := ui.NewSpinner(description)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-ch:
			spinner.Finish()
			return res, nil
		case <-ticker.C:
			spinner.Tick()
		}
	}
}

// recordHistory appends a completed operation to the history database.
// History failures are logged and swallowed; they never fail the
// operation itself.
func recordHistory(ctx context.Context, cfg *config.Config, log *zerolog.Logger, rec *history.Record) {
	store, err := history.New(ctx, cfg.Paths.HistoryDB)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Paths.HistoryDB).Msg("cannot open history database")
		return
	}
	defer store.Close()

	if err := store.Append(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("cannot record operation history")
	}
}
