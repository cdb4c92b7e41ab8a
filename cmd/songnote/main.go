// Command songnote normalises the lyrics of markdown song notes.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/songnote/internal/adapters/driven/config/file"
	"github.com/custodia-labs/songnote/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/songnote/internal/adapters/driving/cli"
	"github.com/custodia-labs/songnote/internal/core/services"
	"github.com/custodia-labs/songnote/internal/logger"
	"github.com/custodia-labs/songnote/internal/normalisers/lyrics"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetInitialiser(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the adapters and services once flags are parsed.
func wire(configDir string) error {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}
	logger.Debug("using config %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	patchService := services.NewPatchService(filesystem.NewNoteStore(), lyrics.New())

	cli.SetSettingsService(settingsService)
	cli.SetPatchService(patchService)
	return nil
}
