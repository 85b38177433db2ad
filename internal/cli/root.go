// Package cli implements the shelf command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/internal/logging"
	"github.com/mesh-intelligence/shelf/internal/output"
	"github.com/mesh-intelligence/shelf/internal/paths"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	dataDir     string
	libraryFile string
	format      string
	logLevel    string
	logFormat   string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags rootFlags

	cfg       types.Config
	configDir string
	format    output.Format
	log       zerolog.Logger
}

// NewRootCmd creates the top-level "shelf" command with global flags and
// all subcommands registered. Running it without a subcommand starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "A personal book catalog",
		Long: `Shelf keeps a catalog of your books in a JSON file.

Run without a subcommand to start the interactive menu, or use the
subcommands below for scripting.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runShell,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/shelf)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "directory holding the library file (default: current directory)")
	pf.StringVar(&a.flags.libraryFile, "file", "", "library file name (default: "+types.DefaultLibraryFile+")")
	pf.StringVar(&a.flags.format, "format", "", "output format: table, json, yaml (default: table on a terminal, json otherwise)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off (default: warn)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: auto, console, json (default: auto)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShellCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newSchemaCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, NewRootCmd())
	stop()
	os.Exit(code)
}

// run executes root and maps its error to an exit code.
func run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	return exitCode(err)
}

// setup loads .env, config.yaml and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return userError(err)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	v, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = v.GetString(cfgKeyLogLevel)
	logCfg.Format = v.GetString(cfgKeyLogFormat)
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.Fields = map[string]string{"session": sessionID()}
	a.log = logging.New(logCfg)

	cfg, err := resolveStoreConfig(a.flags.dataDir, v)
	if err != nil {
		return userError(err)
	}
	a.cfg = cfg

	format, err := output.ParseFormat(v.GetString(cfgKeyOutput))
	if err != nil {
		return userError(err)
	}
	a.format = format

	a.log.Debug().
		Str("config_dir", a.configDir).
		Str("library", a.cfg.Path()).
		Msg("configuration resolved")
	return nil
}

// openStore creates the store and loads it. A corrupted library is reported
// on stderr and replaced by an empty catalog, as the next save overwrites it.
func (a *app) openStore(cmd *cobra.Command) (*catalog.Store, error) {
	store := catalog.NewStore(a.cfg.Path(), catalog.WithLogger(a.log))
	if _, err := store.Load(); err != nil {
		if errors.Is(err, types.ErrCorrupted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: Library file is corrupted. Starting with an empty library.")
			return store, nil
		}
		return nil, sysError(err)
	}
	return store, nil
}

// render writes data in the selected output format.
func (a *app) render(w io.Writer, data any) error {
	format := output.DetectFormat(a.format, w)
	if err := output.NewFormatter(format).Format(w, data); err != nil {
		return sysError(fmt.Errorf("render output: %w", err))
	}
	return nil
}

// humanOutput reports whether messages rather than data should be printed.
func (a *app) humanOutput(w io.Writer) bool {
	return output.DetectFormat(a.format, w) == output.FormatTable
}

// sessionID tags every log line of one run.
func sessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
