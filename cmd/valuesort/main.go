// Command valuesort sorts personal values into lanes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/valuesort/internal/adapters/driven/catalog"
	"github.com/custodia-labs/valuesort/internal/adapters/driven/config/file"
	exportfile "github.com/custodia-labs/valuesort/internal/adapters/driven/export/file"
	"github.com/custodia-labs/valuesort/internal/adapters/driven/watch"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/cli"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
	"github.com/custodia-labs/valuesort/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// build wires the driven adapters into the services the commands use.
func build(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	source := catalog.New(settings.Catalog.Path)

	openBoard := func() (driving.BoardService, driving.SnapshotService, error) {
		values, err := source.Values()
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}

		var opts []services.BoardOption
		if settings.Board.Seed > 0 {
			opts = append(opts, services.WithSeed(uint64(settings.Board.Seed)))
		}
		board := services.NewBoardService(values, opts...)
		snapshot := services.NewSnapshotService(board, exportfile.NewWriter(settings.Export.Dir))
		return board, snapshot, nil
	}

	return &cli.Services{
		Settings:  settingsService,
		Catalog:   source,
		Watcher:   watch.NewWatcher(watch.DefaultDebounce),
		OpenBoard: openBoard,
		LogDir:    filepath.Dir(store.Path()),
	}, nil
}
