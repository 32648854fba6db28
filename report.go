package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// writeReport serializes the run report as YAML.
func writeReport(path string, report *runReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
