package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	StateDir  string `toml:"state_dir"`
}

// Dump contains the defaults applied to every dumping intent.
type Dump struct {
	Engine              string `toml:"engine"`
	Drive               string `toml:"drive"`
	Speed               int    `toml:"speed"`
	Precheck            bool   `toml:"precheck"`
	HashImages          bool   `toml:"hash_images"`
	ArchiveLogs         bool   `toml:"archive_logs"`
	DeleteIntermediates bool   `toml:"delete_intermediates"`
}

// DIC contains DiscImageCreator settings.
type DIC struct {
	Binary               string `toml:"binary"`
	RereadCount          int    `toml:"reread_count"`
	DVDRereadCount       int    `toml:"dvd_reread_count"`
	Quiet                bool   `toml:"quiet"`
	Paranoid             bool   `toml:"paranoid"`
	MultiSectorRead      bool   `toml:"multi_sector_read"`
	MultiSectorReadValue int    `toml:"multi_sector_read_value"`
}

// Redumper contains redumper settings.
type Redumper struct {
	Binary           string `toml:"binary"`
	RereadCount      int    `toml:"reread_count"`
	Verbose          bool   `toml:"verbose"`
	Debug            bool   `toml:"debug"`
	DriveType        string `toml:"drive_type"`
	ReadMethod       string `toml:"read_method"`
	SectorOrder      string `toml:"sector_order"`
	RefineSubchannel bool   `toml:"refine_subchannel"`
	LeadinRetries    int    `toml:"leadin_retries"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format             string            `toml:"format"`
	Level              string            `toml:"level"`
	RetentionDays      int               `toml:"retention_days"`
	ComponentOverrides map[string]string `toml:"component_overrides"`
}

// History contains configuration for the dump history database.
type History struct {
	Enabled       bool `toml:"enabled"`
	RetentionDays int  `toml:"retention_days"`
}

// Config encapsulates all configuration values for dumpdriver.
//
// Configuration sections by subsystem:
//   - Paths: output, log, and state directories
//   - Dump: default engine, drive, speed, and post-dump housekeeping
//   - DIC: DiscImageCreator reread counts and extra checks
//   - Redumper: redumper drive overrides and reread counts
//   - Logging: log format, level, and retention
//   - History: dump history persistence
type Config struct {
	Paths    Paths    `toml:"paths"`
	Dump     Dump     `toml:"dump"`
	DIC      DIC      `toml:"dic"`
	Redumper Redumper `toml:"redumper"`
	Logging  Logging  `toml:"logging"`
	History  History  `toml:"history"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log and state directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.StateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryPath returns the location of the dump history database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, historyFileName)
}

// OptionBag flattens the engine sections into the option bag carried by a
// dumping intent. Keys are "<engine>.<setting>".
func (c *Config) OptionBag() map[string]string {
	bag := map[string]string{
		"dic.reread_count":            strconv.Itoa(c.DIC.RereadCount),
		"dic.dvd_reread_count":        strconv.Itoa(c.DIC.DVDRereadCount),
		"dic.quiet":                   strconv.FormatBool(c.DIC.Quiet),
		"dic.paranoid":                strconv.FormatBool(c.DIC.Paranoid),
		"dic.multi_sector_read":       strconv.FormatBool(c.DIC.MultiSectorRead),
		"dic.multi_sector_read_value": strconv.Itoa(c.DIC.MultiSectorReadValue),
		"redumper.reread_count":       strconv.Itoa(c.Redumper.RereadCount),
		"redumper.verbose":            strconv.FormatBool(c.Redumper.Verbose),
		"redumper.debug":              strconv.FormatBool(c.Redumper.Debug),
		"redumper.refine_subchannel":  strconv.FormatBool(c.Redumper.RefineSubchannel),
		"redumper.leadin_retries":     strconv.Itoa(c.Redumper.LeadinRetries),
	}
	if c.Redumper.DriveType != "" {
		bag["redumper.drive_type"] = c.Redumper.DriveType
	}
	if c.Redumper.ReadMethod != "" {
		bag["redumper.read_method"] = c.Redumper.ReadMethod
	}
	if c.Redumper.SectorOrder != "" {
		bag["redumper.sector_order"] = c.Redumper.SectorOrder
	}
	return bag
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
