package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shelf/internal/logging"
	"github.com/mesh-intelligence/shelf/internal/paths"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix  = "SHELF"
	dotEnvFile = ".env"

	cfgKeyDataDir     = "data_dir"
	cfgKeyLibraryFile = "library_file"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"
	cfgKeyOutput      = "output"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir     string `yaml:"data_dir,omitempty"`
	LibraryFile string `yaml:"library_file"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	Output      string `yaml:"output,omitempty"`
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"file":       cfgKeyLibraryFile,
	"log-level":  cfgKeyLogLevel,
	"log-format": cfgKeyLogFormat,
	"format":     cfgKeyOutput,
}

// loadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper, with SHELF_*
// environment overrides and the persistent flags bound on top.
// A missing config.yaml is not an error.
func loadConfig(configDir string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLibraryFile, types.DefaultLibraryFile)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, logging.FormatAuto)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveStoreConfig builds the store location from the --data-dir flag and
// the loaded configuration.
func resolveStoreConfig(dataDirFlag string, v *viper.Viper) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(dataDirFlag, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg := types.Config{
		DataDir:     dataDir,
		LibraryFile: v.GetString(cfgKeyLibraryFile),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns false.
func writeConfigIfMissing(configDir string, cfg configFile) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# shelf configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
