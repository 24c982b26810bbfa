package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type outputMode int

const (
	outputText outputMode = iota
	outputJSON
	outputYAML
)

func (c *commandContext) outputMode() outputMode {
	switch {
	case c.jsonFlag != nil && *c.jsonFlag:
		return outputJSON
	case c.yamlFlag != nil && *c.yamlFlag:
		return outputYAML
	default:
		return outputText
	}
}

// writeStructured writes v in the selected machine format. It reports false
// when text output was requested so the caller renders its own view.
func (c *commandContext) writeStructured(cmd *cobra.Command, v any) (bool, error) {
	switch c.outputMode() {
	case outputJSON:
		return true, writeJSON(cmd, v)
	case outputYAML:
		return true, writeYAML(cmd, v)
	default:
		return false, nil
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
