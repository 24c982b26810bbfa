package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	knownEngines     = []string{"dic", "redumper", "cleanrip", "umd", "ps3cfw", "xbc"}
	knownLevels      = []string{"debug", "info", "warn", "error"}
	knownDriveTypes  = []string{"GENERIC", "PLEXTOR", "LG_ASU8A", "LG_ASU8B", "LG_ASU8C", "LG_ASU3", "LG_ASU2"}
	knownReadMethods = []string{"BE", "D8", "BE_CDDA"}
	knownOrders      = []string{"DATA_C2_SUB", "DATA_SUB_C2", "DATA_SUB", "DATA_C2"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDump(); err != nil {
		return err
	}
	if err := c.validateDIC(); err != nil {
		return err
	}
	if err := c.validateRedumper(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDump() error {
	if !slices.Contains(knownEngines, c.Dump.Engine) {
		return fmt.Errorf("dump.engine %q is not one of %v", c.Dump.Engine, knownEngines)
	}
	if c.Dump.DeleteIntermediates && !c.Dump.ArchiveLogs {
		return errors.New("dump.delete_intermediates requires dump.archive_logs so logs survive cleanup")
	}
	return nil
}

func (c *Config) validateDIC() error {
	if err := ensurePositiveMap(map[string]int{
		"dic.reread_count":            c.DIC.RereadCount,
		"dic.dvd_reread_count":        c.DIC.DVDRereadCount,
		"dic.multi_sector_read_value": c.DIC.MultiSectorReadValue,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRedumper() error {
	if c.Redumper.RereadCount <= 0 {
		return errors.New("redumper.reread_count must be positive")
	}
	if c.Redumper.DriveType != "" && !slices.Contains(knownDriveTypes, c.Redumper.DriveType) {
		return fmt.Errorf("redumper.drive_type %q is not one of %v", c.Redumper.DriveType, knownDriveTypes)
	}
	if c.Redumper.ReadMethod != "" && !slices.Contains(knownReadMethods, c.Redumper.ReadMethod) {
		return fmt.Errorf("redumper.read_method %q is not one of %v", c.Redumper.ReadMethod, knownReadMethods)
	}
	if c.Redumper.SectorOrder != "" && !slices.Contains(knownOrders, c.Redumper.SectorOrder) {
		return fmt.Errorf("redumper.sector_order %q is not one of %v", c.Redumper.SectorOrder, knownOrders)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(knownLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of %v", c.Logging.Level, knownLevels)
	}
	for component, level := range c.Logging.ComponentOverrides {
		if !slices.Contains(knownLevels, level) {
			return fmt.Errorf("logging.component_overrides.%s: level %q is not one of %v", component, level, knownLevels)
		}
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
