// Package config loads, normalizes, and validates dumpdriver configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DUMPDRIVER_DRIVE environment
// fallback. Engine sections are flattened into the option bag that
// accompanies each dumping intent through OptionBag.
package config
