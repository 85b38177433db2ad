package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/internal/logging"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shelf configuration and library",
		Long: `Write a default config.yaml to the configuration directory and an empty
library file to the data directory. Existing files are left untouched.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg := configFile{
		LibraryFile: a.cfg.LibraryFile,
		LogLevel:    defaultLogLevel,
		LogFormat:   logging.FormatAuto,
	}
	if a.flags.dataDir != "" {
		cfg.DataDir = a.cfg.DataDir
	}
	created, err := writeConfigIfMissing(a.configDir, cfg)
	if err != nil {
		return sysError(err)
	}
	configPath := filepath.Join(a.configDir, configFileExt)
	if created {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	} else {
		fmt.Fprintf(out, "Config %s already exists\n", configPath)
	}

	libPath := a.cfg.Path()
	if _, err := os.Stat(libPath); err == nil {
		fmt.Fprintf(out, "Library %s already exists\n", libPath)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return sysError(fmt.Errorf("stat library: %w", err))
	}

	store := catalog.NewStore(libPath, catalog.WithLogger(a.log))
	if err := store.Save(types.Catalog{}); err != nil {
		return sysError(fmt.Errorf("initialize library: %w", err))
	}
	fmt.Fprintf(out, "Created empty library %s\n", libPath)
	return nil
}
