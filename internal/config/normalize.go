package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDump()
	c.normalizeDIC()
	c.normalizeRedumper()
	c.normalizeLogging()
	c.normalizeHistory()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDump() {
	c.Dump.Engine = strings.ToLower(strings.TrimSpace(c.Dump.Engine))
	if c.Dump.Engine == "" {
		c.Dump.Engine = defaultEngine
	}
	c.Dump.Drive = strings.TrimSpace(c.Dump.Drive)
	if c.Dump.Drive == "" {
		if value, ok := os.LookupEnv(DriveEnv); ok {
			c.Dump.Drive = strings.TrimSpace(value)
		}
	}
	if c.Dump.Speed < 0 {
		c.Dump.Speed = 0
	}
}

func (c *Config) normalizeDIC() {
	c.DIC.Binary = strings.TrimSpace(c.DIC.Binary)
	if c.DIC.Binary == "" {
		c.DIC.Binary = defaultDIC
	}
	if c.DIC.RereadCount <= 0 {
		c.DIC.RereadCount = defaultRereadCount
	}
	if c.DIC.DVDRereadCount <= 0 {
		c.DIC.DVDRereadCount = defaultDVDRereadCount
	}
	if c.DIC.MultiSectorReadValue <= 0 {
		c.DIC.MultiSectorReadValue = defaultMultiSector
	}
}

func (c *Config) normalizeRedumper() {
	c.Redumper.Binary = strings.TrimSpace(c.Redumper.Binary)
	if c.Redumper.Binary == "" {
		c.Redumper.Binary = defaultRedumper
	}
	if c.Redumper.RereadCount <= 0 {
		c.Redumper.RereadCount = defaultRereadCount
	}
	c.Redumper.DriveType = strings.ToUpper(strings.TrimSpace(c.Redumper.DriveType))
	c.Redumper.ReadMethod = strings.ToUpper(strings.TrimSpace(c.Redumper.ReadMethod))
	c.Redumper.SectorOrder = strings.ToUpper(strings.TrimSpace(c.Redumper.SectorOrder))
	if c.Redumper.LeadinRetries < 0 {
		c.Redumper.LeadinRetries = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	if len(c.Logging.ComponentOverrides) > 0 {
		overrides := make(map[string]string, len(c.Logging.ComponentOverrides))
		for component, level := range c.Logging.ComponentOverrides {
			key := strings.ToLower(strings.TrimSpace(component))
			if key == "" {
				continue
			}
			overrides[key] = strings.ToLower(strings.TrimSpace(level))
		}
		c.Logging.ComponentOverrides = overrides
	}
}

func (c *Config) normalizeHistory() {
	if c.History.RetentionDays < 0 {
		c.History.RetentionDays = 0
	}
}
